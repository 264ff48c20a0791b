package scoring_test

import (
	"fmt"

	"github.com/plus3/colorcolumns/scoring"
)

func ExampleScoring_UpdateFromMatches() {
	s := scoring.New(0)

	// A horizontal run of four.
	fmt.Println(s.UpdateFromMatches([]int{4}, 1))
	// Its removal uncovers a vertical and a diagonal run of three.
	fmt.Println(s.UpdateFromMatches([]int{3, 3}, 2))
	fmt.Println(s.Score, s.MaxCombo, s.IsNewHighscore)
	// Output:
	// 5
	// 24
	// 29 29 false
}

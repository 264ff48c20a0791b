// Package scoring computes points for match events and tracks the high score.
package scoring

// Scoring holds the score state of one game.
type Scoring struct {
	Score int

	MaxCombo      int
	IsNewMaxCombo bool
	combo         int

	Highscore      int
	IsNewHighscore bool
	highscoreBeat  bool
}

// New starts a game against the given high score.
func New(highscore int) *Scoring {
	return &Scoring{Highscore: highscore}
}

// RunPoints returns the points a single run of the given length is worth: 3 for the
// minimum length plus 2+3+...+(n-2) for every block beyond it.
func RunPoints(length int) int {
	bonus := 0
	for k := 2; k <= length-2; k++ {
		bonus += k
	}
	return 3 + bonus
}

// ComboPoints returns the points of one match event: the sum of its run points
// multiplied by the number of runs and by the chain depth.
func ComboPoints(lengths []int, chain int) int {
	sum := 0
	for _, n := range lengths {
		sum += RunPoints(n)
	}
	return sum * len(lengths) * chain
}

// UpdateFromMatches scores one match event and returns the points it added.
func (s *Scoring) UpdateFromMatches(lengths []int, chain int) int {
	points := ComboPoints(lengths, chain)
	s.Score += points

	if chain == 1 {
		s.combo = 0
	}
	s.combo += points
	s.IsNewMaxCombo = false
	if s.combo > s.MaxCombo {
		s.MaxCombo = s.combo
		s.IsNewMaxCombo = true
	}

	s.IsNewHighscore = false
	if s.Score > s.Highscore && !s.highscoreBeat {
		s.IsNewHighscore = true
		s.highscoreBeat = true
	}
	return points
}

// Combo returns the points accumulated in the current cascade.
func (s *Scoring) Combo() int {
	return s.combo
}

// BeatsHighscore reports whether the score is worth saving.
func (s *Scoring) BeatsHighscore() bool {
	return s.Score > s.Highscore
}

package board

import "github.com/kamstrup/intmap"

// BlinkSchedule holds the number of ticks each removal animation stage lasts.
type BlinkSchedule [4]int

// DefaultBlinkSchedule is the removal animation timing at 60 ticks per second.
var DefaultBlinkSchedule = BlinkSchedule{12, 11, 11, 24}

// Total returns the number of ticks until the last stage completes.
func (s BlinkSchedule) Total() int {
	n := 0
	for _, t := range s {
		n += t
	}
	return n
}

// StageAt returns the stage reached after ticks ticks. A result of len(s) or more
// means the animation is over.
func (s BlinkSchedule) StageAt(ticks int) int {
	stage := 0
	for _, t := range s {
		if ticks < t {
			break
		}
		ticks -= t
		stage++
	}
	return stage
}

// Indicator is a line drawn across a match run while its blocks blink.
type Indicator struct {
	Color    Color
	From, To Point
}

// Matching tracks one match event and the chain of matches it triggers.
type Matching struct {
	geo      Geometry
	schedule BlinkSchedule

	chain      int
	lengths    []int
	indicators []Indicator
	cells      []Coord
	blocks     []Block

	// Stage is the current removal animation stage.
	Stage int
}

// NewMatching takes the matched blocks out of the pile and starts a chain of depth 1.
func NewMatching(m Matches, p *Pile, schedule BlinkSchedule) *Matching {
	mt := &Matching{geo: p.Geometry(), schedule: schedule, chain: 1}
	mt.extract(m, p)
	return mt
}

// NewChainedMatch replaces the current matches with a follow-up match caused by the
// previous removal, deepening the chain and restarting the animation.
func (mt *Matching) NewChainedMatch(m Matches, p *Pile) {
	mt.chain++
	mt.Stage = 0
	mt.extract(m, p)
}

func (mt *Matching) extract(m Matches, p *Pile) {
	seen := intmap.New[uint32, struct{}](m.Count() * MinRunLength)
	mt.lengths = mt.lengths[:0]
	mt.indicators = mt.indicators[:0]
	mt.cells = nil

	for _, run := range m.All() {
		mt.lengths = append(mt.lengths, run.Len())
		mt.indicators = append(mt.indicators, Indicator{
			Color: run.Color,
			From:  mt.geo.CellCenter(run.First()),
			To:    mt.geo.CellCenter(run.Last()),
		})
		for _, c := range run.Cells {
			if _, ok := seen.Get(c.key()); ok {
				continue
			}
			seen.Put(c.key(), struct{}{})
			mt.cells = append(mt.cells, c)
		}
	}

	mt.blocks = p.ExtractMatchingBlocks(mt.cells)
}

// Blink advances the removal animation to the given number of ticks since the match
// (or chain link) started. It reports whether the animation is over.
func (mt *Matching) Blink(ticks int) bool {
	mt.Stage = mt.schedule.StageAt(ticks)
	return mt.Stage >= len(mt.schedule)
}

// ShowsBlocks reports whether the matched blocks are drawn in the current stage.
// Otherwise the direction indicators are.
func (mt *Matching) ShowsBlocks() bool {
	return mt.Stage%2 == 0
}

// Remove clears the matched cells from the pile and compacts it. It reports whether
// the pile is full afterwards.
func (mt *Matching) Remove(p *Pile) bool {
	return p.RemoveMatches(mt.cells)
}

// ScoringData returns the length of every run and the chain depth.
func (mt *Matching) ScoringData() ([]int, int) {
	return mt.lengths, mt.chain
}

// Chain returns the number of sequential matches so far.
func (mt *Matching) Chain() int {
	return mt.chain
}

// Cells returns the unique matched cells.
func (mt *Matching) Cells() []Coord {
	return mt.cells
}

// Blocks returns the blocks taken out of the pile.
func (mt *Matching) Blocks() []Block {
	return append([]Block(nil), mt.blocks...)
}

// Indicators returns one line per run.
func (mt *Matching) Indicators() []Indicator {
	return mt.indicators
}

// Anchor returns the center of the bounding box of the matched cells.
func (mt *Matching) Anchor() Point {
	if len(mt.cells) == 0 {
		return Point{}
	}
	lo, hi := mt.cells[0], mt.cells[0]
	for _, c := range mt.cells[1:] {
		lo.Col = min(lo.Col, c.Col)
		lo.Row = min(lo.Row, c.Row)
		hi.Col = max(hi.Col, c.Col)
		hi.Row = max(hi.Row, c.Row)
	}
	return Point{
		X: (mt.geo.ColumnX(lo.Col) + mt.geo.ColumnX(hi.Col) + mt.geo.BlockSize) / 2,
		Y: (mt.geo.RowY(lo.Row) + mt.geo.RowY(hi.Row) + mt.geo.BlockSize) / 2,
	}
}

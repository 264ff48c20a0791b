package main

import (
	"io"
	"log/slog"
	"sync"

	"github.com/cheggaaa/pb/v3"

	"github.com/plus3/colorcolumns/config"
	"github.com/plus3/colorcolumns/engine"
	"github.com/plus3/colorcolumns/input"
	"github.com/plus3/colorcolumns/playing"
	"github.com/plus3/colorcolumns/scoring"
)

// Result is the outcome of one simulated game.
type Result struct {
	Seed         uint64
	Score        int
	MaxCombo     int
	LongestChain int
	Matches      int
	Landed       int
	Ticks        uint64
	// Finished is false when the tick budget ran out first.
	Finished bool
}

// Simulator plays independent games on a pool of workers.
type Simulator struct {
	Config   config.Config
	Workers  int
	Budget   uint64
	Progress bool
	Logger   *slog.Logger
}

// PlayOne runs a single game to game over or until the budget is spent.
func (s *Simulator) PlayOne(seed uint64) Result {
	cfg := s.Config
	cfg.Gameplay.Seed = seed

	game := playing.New(playing.OptionsFrom(cfg, scoring.NewMemoryStore(0), s.Logger))
	bot := NewBot(game, seed)

	scheduler := engine.NewScheduler()
	scheduler.Register(bot)

	dt := 1.0 / float64(cfg.Gameplay.TPS)
	for scheduler.Ticks() < s.Budget && scheduler.Once(dt, input.None) {
	}

	sc := game.Scoring()
	return Result{
		Seed:         seed,
		Score:        sc.Score,
		MaxCombo:     sc.MaxCombo,
		LongestChain: bot.longestChain,
		Matches:      bot.matches,
		Landed:       game.Landed(),
		Ticks:        scheduler.Ticks(),
		Finished:     game.State() == playing.GameOver,
	}
}

// Run plays games with consecutive seeds starting at seed. Results are in seed order.
func (s *Simulator) Run(games int, seed uint64) ([]Result, *pb.ProgressBar) {
	results := make([]Result, games)
	jobs := make(chan int, games)

	bar := pb.StartNew(games)
	if !s.Progress {
		bar.SetWriter(io.Discard)
	}

	wg := new(sync.WaitGroup)
	wg.Add(s.Workers)
	for range s.Workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.PlayOne(seed + uint64(i))
				bar.Increment()
			}
		}()
	}

	for i := range games {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	bar.Finish()

	return results, bar
}

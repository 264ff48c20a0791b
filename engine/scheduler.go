package engine

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/colorcolumns/input"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Ticks           uint64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler executes systems in registration order, one frame per tick.
type Scheduler struct {
	systems     []System
	systemStats []*systemStatsInternal
	commands    *Commands
	tick        uint64
	stopped     bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		systems:  make([]System, 0),
		commands: newCommands(),
	}
}

// Register appends a system. Its stats are reported under its type name.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once and flushes the frame's commands. It
// returns false once a system has asked to quit; later calls do nothing.
func (s *Scheduler) Once(dt float64, ev input.Event) bool {
	if s.stopped {
		return false
	}
	s.tick++
	frame := newFrame(s.tick, dt, ev, s.commands)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	if s.commands.Flush() {
		s.stopped = true
	}
	return !s.stopped
}

// Run executes all systems at the given interval until a system quits or the context
// is cancelled. Events arriving between ticks are latched so that each frame sees
// the most recent one. Run returns the context error on cancellation and nil on quit.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, events <-chan input.Event) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var latch input.Latch
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			latch.Set(ev)
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if !s.Once(dt, latch.Take()) {
				return nil
			}
		}
	}
}

// Ticks returns the number of frames executed so far.
func (s *Scheduler) Ticks() uint64 {
	return s.tick
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Ticks:       s.tick,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

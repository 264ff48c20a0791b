package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/colorcolumns/engine"
)

// PerformanceStats keeps a ring of recent frame times and shows them next to the
// scheduler statistics.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	recorded      int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record stores one frame time in seconds.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	ps.recorded = min(ps.recorded+1, ps.historyFrames)
}

// AverageFrameTime returns the mean of the recorded frame times in milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var sum float32
	for _, ft := range ps.frameHistory {
		sum += ft
	}
	return sum / float32(ps.recorded)
}

func (ps *PerformanceStats) Render(stats *engine.SchedulerStats, deltaTime float32) {
	ps.Record(deltaTime)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	avg := ps.AverageFrameTime()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, s := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(s.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

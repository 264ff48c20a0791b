package debugui

import (
	"fmt"
	"log/slog"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/playing"
	"github.com/plus3/colorcolumns/snapshot"
	"github.com/plus3/colorcolumns/stages"
)

// GameInspector shows the stage, the game state and the pile.
type GameInspector struct {
	Director *stages.Director
	Logger   *slog.Logger
	// Muted is toggled from the window when set.
	Muted *bool
}

// Summary lists the counters shown by the inspector.
func Summary(stage stages.Key, v playing.View) []string {
	return []string{
		fmt.Sprintf("Stage: %s", stage),
		fmt.Sprintf("State: %s", v.State),
		fmt.Sprintf("Tick: %d", v.Tick),
		fmt.Sprintf("Descent interval: %d ticks", v.DescentTicks),
		fmt.Sprintf("Landed cargoes: %d", v.Landed),
		fmt.Sprintf("Chain: %d (stage %d)", v.Chain, v.BlinkStage),
		fmt.Sprintf("Score: %d  Max combo: %d  High score: %d", v.Score, v.MaxCombo, v.Highscore),
		fmt.Sprintf("Blocks: %d  Popups: %d", len(v.Blocks), len(v.Popups)),
	}
}

func (gi *GameInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	game := gi.Director.Game()
	v := game.View()
	for _, line := range Summary(gi.Director.Current(), v) {
		imgui.Text(line)
	}
	if v.Info.Visible() {
		imgui.BulletText(fmt.Sprintf("Banner: %s (%d ticks, %d blinks)", v.Info.Text, v.Info.Ticks, v.Info.Blinks))
	}

	if gi.Muted != nil {
		imgui.Checkbox("Mute", gi.Muted)
	}
	imgui.SameLine()
	if imgui.Button("Log snapshot") && gi.Logger != nil {
		gi.Logger.Info("pile snapshot", "state", v.State, "pile", "\n"+snapshot.Format(game.Pile()))
	}

	if imgui.TreeNodeStr("Pile") {
		gi.renderPile(game.Pile())
		imgui.TreePop()
	}

	imgui.End()
}

func (gi *GameInspector) renderPile(p *board.Pile) {
	geo := p.Geometry()
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("PileTable", int32(geo.Columns+1), tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}

	imgui.TableSetupColumn("Row")
	for col := range geo.Columns {
		imgui.TableSetupColumn(fmt.Sprintf("%d", col))
	}
	imgui.TableHeadersRow()

	for row := geo.Rows - 1; row >= 0; row-- {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", row))
		for col := range geo.Columns {
			imgui.TableNextColumn()
			b, ok := p.At(board.Coord{Col: col, Row: row})
			if !ok {
				imgui.Text(string(board.NoBlockCode))
				continue
			}
			imgui.TextColored(imgui.NewVec4(b.Color.R, b.Color.G, b.Color.B, 1), string(b.Color.Code))
		}
	}

	imgui.EndTable()
}

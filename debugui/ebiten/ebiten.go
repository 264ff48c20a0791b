// Package ebiten hosts the debug overlay inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and the window it draws into. No imgui.ini is
// written.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: b}
}

// Package debugui draws Dear ImGui inspector windows over the game.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/colorcolumns/engine"
)

// Item is a window rendered every frame while the overlay is shown.
type Item struct {
	Name   string
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System queues the render function of every item. It must run between the
// backend's BeginFrame and EndFrame.
type System struct {
	Items   []Item
	Enabled bool
	Input   InputState
}

func (s *System) Add(name string, render func()) {
	s.Items = append(s.Items, Item{Name: name, Render: render})
}

// Execute updates the input state and defers all render functions to the end of
// the frame.
func (s *System) Execute(frame *engine.Frame) {
	if !s.Enabled {
		s.Input = InputState{}
		return
	}

	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}

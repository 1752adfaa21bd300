//go:build !ebiten

package view

import (
	"log"

	"simlife/src/universe"
)

//Window is not available without the ebiten build tag
type Window struct{}

func NewWindow(scale int) *Window {
	return &Window{}
}

func (w *Window) Register(u universe.Universe) {}

func (w *Window) Refresh() {}

func (w *Window) Start() {
	log.Println("simlife was built without the ebiten tag, the window is not available")
}

//go:build ebiten

package view

import (
	"errors"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"simlife/src/universe"
)

//Window draws the live cells as rectangles in the ebiten window
type Window struct {
	u        universe.Universe
	scale    int
	running  bool
	onColor  color.Color
	offColor color.Color
}

func NewWindow(scale int) *Window {
	if scale <= 0 {
		scale = 5
	}
	return &Window{scale: scale, onColor: color.Black, offColor: color.White}
}

func (w *Window) Register(u universe.Universe) {
	w.u = u
}

//Refresh does nothing, the window redraws every frame
func (w *Window) Refresh() {}

func (w *Window) Start() {
	o := w.u.Options()
	ebiten.SetWindowTitle("simlife")
	ebiten.SetWindowSize(o.Width*w.scale, o.Height*w.scale)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

//Update handles the input, the universe paces the steps itself
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	mode := w.u.Status().RunningMode
	w.running = mode == universe.RunningStateRun || mode == universe.RunningStateStep
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if w.running {
			w.u.Stop()
		} else {
			w.u.Run()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !w.running {
		w.u.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		w.u.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		w.u.SettleWithRandomData()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.u.SettleCell(y/w.scale, x/w.scale)
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.offColor)
	s := float32(w.scale)
	for y, l := range w.u.Area().Entities {
		for x, e := range l {
			if e {
				vector.DrawFilledRect(screen, float32(x)*s, float32(y)*s, s, s, w.onColor, false)
			}
		}
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	o := w.u.Options()
	return o.Width * w.scale, o.Height * w.scale
}

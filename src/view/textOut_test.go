package view

import (
	"bytes"
	"strings"
	"testing"

	"simlife/src/life"
	"simlife/src/universe"
)

func newTextUniverse(t *testing.T) universe.Universe {
	t.Helper()
	o := universe.DefaultUniverseOptions
	o.Width, o.Height = 3, 3
	o.Interval = 0
	u, err := universe.NewBaseUniverse(&o, make(chan universe.Status, 10))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(u.Close)
	return u
}

func TestRenderText(t *testing.T) {
	a := universe.Area{Width: 3, Height: 2, Entities: [][]life.Cell{{true, false, true}, {false, true, false}}}
	got := string(RenderText(a, universe.Status{Generation: 4, Population: 3}))
	want := "O O\n O \nGeneration: 4\nPopulation: 3\n"
	if got != want {
		t.Fatalf("rendered %q, expected %q", got, want)
	}
}

func TestTextOutSteps(t *testing.T) {
	u := newTextUniverse(t)
	var out bytes.Buffer
	tv := NewTextOut(&out, strings.NewReader("\n"), false)
	u.RegisterViewer(tv)
	u.Settle(life.Blinker.Coordinates)
	out.Reset()
	tv.Start()
	if !strings.Contains(out.String(), " O \n O \n O \nGeneration: 1\nPopulation: 3\n") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestTextOutDrawsFirstGeneration(t *testing.T) {
	u := newTextUniverse(t)
	u.Settle(life.Blinker.Coordinates)
	var out bytes.Buffer
	tv := NewTextOut(&out, strings.NewReader("q\n"), false)
	u.RegisterViewer(tv)
	tv.Start()
	want := "   \nOOO\n   \nGeneration: 0\nPopulation: 3\n"
	if out.String() != want {
		t.Fatalf("output before the first step %q, expected %q", out.String(), want)
	}
}

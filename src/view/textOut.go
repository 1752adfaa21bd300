package view

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"simlife/src/universe"
)

const (
	textLive = 'O'
	textDead = ' '

	clearScreen = "\x1B[2J\x1B[H"
)

//TextOut renders the field with plain characters and waits for Enter between the steps
type TextOut struct {
	u     universe.Universe
	w     io.Writer
	in    *bufio.Reader
	clear bool
}

//NewTextOut creates the TextOut, the screen is cleared before every frame when clear is set
func NewTextOut(w io.Writer, in io.Reader, clear bool) *TextOut {
	return &TextOut{w: w, in: bufio.NewReader(in), clear: clear}
}

func (t *TextOut) Register(u universe.Universe) {
	t.u = u
}

func (t *TextOut) Refresh() {
	if t.u == nil {
		return
	}
	if t.clear {
		_, _ = io.WriteString(t.w, clearScreen)
	}
	_, _ = t.w.Write(RenderText(t.u.Area(), t.u.Status()))
}

//Start draws the current generation then steps the universe on every line read from the input until EOF or "q"
func (t *TextOut) Start() {
	stateCh := t.u.StateCh()
	t.Refresh()
	for {
		line, err := t.in.ReadString('\n')
		if bytes.HasPrefix(bytes.TrimSpace([]byte(line)), []byte("q")) || (err != nil && line == "") {
			return
		}
		t.u.Step()
		if stateCh == nil {
			continue
		}
		stepped := false
		for st := range stateCh {
			if st.RunningMode == universe.RunningStateStep {
				stepped = true
			}
			if stepped && st.RunningMode == universe.RunningStateManual {
				break
			}
			if st.RunningMode == universe.RunningStateFinished {
				return
			}
		}
	}
}

//RenderText returns the field rows followed by the generation and population lines
func RenderText(a universe.Area, st universe.Status) []byte {
	var b bytes.Buffer
	for _, l := range a.Entities {
		for _, e := range l {
			if e {
				b.WriteByte(textLive)
			} else {
				b.WriteByte(textDead)
			}
		}
		b.WriteByte('\n')
	}
	_, _ = fmt.Fprintf(&b, "Generation: %d\n", st.Generation)
	_, _ = fmt.Fprintf(&b, "Population: %d\n", st.Population)
	return b.Bytes()
}

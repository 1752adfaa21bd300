package view

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"simlife/src/life"
	"simlife/src/universe"
)

const (
	fieldView  = "battlefield"
	speedView  = "speed"
	headerView = "header"
	helpView   = "help"

	sidebarWidth    = 28
	minScreenHeight = 20
	speedHeight     = 3
)

type keyBinding struct {
	key     interface{}
	label   string
	descr   string
	view    string
	handler func(v *gocui.View) error
}

//panel is the framed text block of the sidebar
type panel struct {
	name   string
	title  string
	render func(w *propWriter)
}

//ConsoleUI is the interactive terminal front end
type ConsoleUI struct {
	u        universe.Universe
	g        *gocui.Gui
	keys     []keyBinding
	panels   []panel
	live     string
	dead     string
	tooSmall bool
}

var modeNames = map[universe.RunningState]string{
	universe.RunningStateManual:   aurora.Blue("waiting").String(),
	universe.RunningStateStep:     "do the step",
	universe.RunningStateRun:      aurora.Cyan("running").String(),
	universe.RunningStateFinished: aurora.Red("finished").String(),
}

func NewViewTerminal() *ConsoleUI {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	g.Mouse = true

	t := &ConsoleUI{
		g:    g,
		live: aurora.Green("█").BgBrightGreen().String(),
		dead: "░",
	}
	t.panels = []panel{
		{name: "configuration", title: "Configuration", render: t.renderConfiguration},
		{name: "status", title: "Status", render: t.renderStatus},
	}
	t.keys = []keyBinding{
		{key: gocui.KeyCtrlC, label: "^C", descr: "Exit", handler: t.cmdQuit},
		{key: 'n', label: "N", descr: "Next step", handler: t.cmd(func() { t.u.Step() })},
		{key: 'r', label: "R", descr: "Run", handler: t.cmd(func() { t.u.Run() })},
		{key: 's', label: "S", descr: "Stop", handler: t.cmd(func() { t.u.Stop() })},
		{key: 'c', label: "C", descr: "Clear", handler: t.cmd(func() { t.u.Clear() })},
		{key: 'w', label: "W", descr: "Random", handler: t.cmd(func() { t.u.SettleWithRandomData() })},
		{key: 'x', label: "X", descr: "Scatter", handler: t.cmd(func() { t.u.SettleScattered() })},
		{key: gocui.MouseLeft, label: "MOUSE", descr: "Settle the cell", view: fieldView, handler: t.cmdSettleCell},
		{key: gocui.KeyEnter, label: "ENTER", descr: "Apply speed, 0 stops", view: speedView, handler: t.cmdSetSpeed},
	}
	g.SetManagerFunc(t.layout)
	for _, k := range t.keys {
		h := k.handler
		if err := g.SetKeybinding(k.view, k.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			log.Panicln(err)
		}
	}
	return t
}

func (t *ConsoleUI) Register(u universe.Universe) {
	t.u = u
}

func (t *ConsoleUI) Start() {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

//Refresh can be called from any goroutine, the drawing is done by the gui loop
func (t *ConsoleUI) Refresh() {
	area := t.u.Area()
	t.g.Update(func(g *gocui.Gui) error {
		t.drawPanels(g)
		return t.drawField(g, area)
	})
}

//propWriter prints "name: value" lines into the view
type propWriter struct {
	v *gocui.View
}

func (w *propWriter) prop(name string, format string, values ...interface{}) {
	_, _ = fmt.Fprintf(w.v, " %s: %s\n", aurora.Green(name), fmt.Sprintf(format, values...))
}

func (t *ConsoleUI) renderConfiguration(w *propWriter) {
	o := t.u.Options()
	w.prop("Dimension", "%v x %v", o.Width, o.Height)
	w.prop("Engine", "%v", o.Engine)
	w.prop("Interval", "%v", o.Interval)
	w.prop("Speed", "%v updates/s", universe.Speed(o.Interval))
	w.prop("Iterations", "%v steps", o.MaxSteps)
}

func (t *ConsoleUI) renderStatus(w *propWriter) {
	s := t.u.Status()
	w.prop("Generation", "%v", s.Generation)
	w.prop("Population", "%v", s.Population)
	w.prop("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond))
	w.prop("Mode", "%v", modeNames[s.RunningMode])
	if r, ok := s.Details["Bounding box"].(life.Rect); ok {
		w.prop("Bounding box", "%v x %v", r.Width, r.Height)
	}
}

func (t *ConsoleUI) drawPanels(g *gocui.Gui) {
	for _, p := range t.panels {
		if v, err := g.View(p.name); err == nil {
			v.Clear()
			p.render(&propWriter{v})
		}
	}
}

//drawField prints the visible part of the area, the last line warns when the field is cropped
func (t *ConsoleUI) drawField(g *gocui.Gui, a universe.Area) error {
	v, err := g.View(fieldView)
	if err != nil {
		//the view is absent while the terminal is too small
		return nil
	}
	v.Clear()
	w, h := v.Size()
	cropped := a.Width > w || a.Height > h

	rows := make([]string, 0, h)
	for _, l := range a.Entities {
		if len(rows) == h-1 && cropped {
			rows = append(rows, aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		if len(rows) == h {
			break
		}
		var b strings.Builder
		for x, e := range l {
			if x == w {
				break
			}
			if e {
				b.WriteString(t.live)
			} else {
				b.WriteString(t.dead)
			}
		}
		rows = append(rows, b.String())
	}
	_, _ = fmt.Fprint(v, strings.Join(rows, "\n"))
	return nil
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxY < minScreenHeight {
		t.tooSmall = true
		for _, name := range []string{"configuration", "status", speedView, fieldView, helpView} {
			_ = g.DeleteView(name)
		}
		return t.header(g, maxY, "Terminal height too small")
	}
	if err := t.header(g, 3, "This is \"The Life\" game simulation"); err != nil {
		return err
	}

	bottom := maxY - 5
	created := t.tooSmall
	t.tooSmall = false

	//the sidebar panels share the space above the speed input
	top, step := 3, (bottom-speedHeight-3)/len(t.panels)
	for i, p := range t.panels {
		y2 := top + step - 1
		if i == len(t.panels)-1 {
			y2 = bottom - speedHeight
		}
		v, isNew, err := framedView(g, p.name, p.title, 0, top, sidebarWidth, y2)
		if err != nil {
			return err
		}
		if isNew {
			created = true
			p.render(&propWriter{v})
		}
		top = y2 + 1
	}

	v, isNew, err := framedView(g, speedView, "Speed, updates/s", 0, bottom-speedHeight+1, sidebarWidth, bottom)
	if err != nil {
		return err
	}
	if isNew {
		v.Editable = true
		if _, err := g.SetCurrentView(speedView); err != nil {
			return err
		}
	}

	if _, isNew, err = framedView(g, fieldView, "Battle Field", sidebarWidth+1, 3, maxX-1, bottom); err != nil {
		return err
	}
	if isNew || created {
		_ = t.drawField(g, t.u.Area())
	}

	return t.help(g, maxX, maxY)
}

//framedView creates or resizes the view, isNew is set on creation
func framedView(g *gocui.Gui, name string, title string, x0, y0, x1, y1 int) (*gocui.View, bool, error) {
	v, err := g.SetView(name, x0, y0, x1, y1)
	if err == nil {
		return v, false, nil
	}
	if err != gocui.ErrUnknownView || v == nil {
		return nil, false, err
	}
	v.Title = title
	v.Frame = true
	return v, true, nil
}

func (t *ConsoleUI) help(g *gocui.Gui, maxX int, maxY int) error {
	v, err := g.SetView(helpView, -1, maxY-5, maxX, maxY-3)
	if err == nil {
		return nil
	}
	if err != gocui.ErrUnknownView || v == nil {
		return err
	}
	v.Frame = false
	items := make([]string, 0, len(t.keys))
	for _, k := range t.keys {
		items = append(items, aurora.Green(k.label).String()+": "+k.descr)
	}
	_, _ = fmt.Fprintln(v, "KEYBINDINGS: "+strings.Join(items, ", "))
	return nil
}

func (t *ConsoleUI) header(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView(headerView, -1, -1, maxX+1, height)
	if err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	if maxX < len(text) {
		return fmt.Errorf("terminal width is too small: %v", maxX)
	}
	v.Clear()
	_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	return nil
}

//cmd wraps the universe command into the key handler
func (t *ConsoleUI) cmd(f func()) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		f()
		return nil
	}
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdSettleCell(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.u.SettleCell(cy, cx)
	return nil
}

//cmdSetSpeed applies the typed speed, the malformed value keeps the previous one
func (t *ConsoleUI) cmdSetSpeed(v *gocui.View) error {
	t.u.SetSpeed(v.Buffer())
	v.Clear()
	return v.SetCursor(0, 0)
}

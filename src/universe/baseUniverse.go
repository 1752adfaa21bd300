package universe

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"simlife/src/life"
)

//BaseUniverse drives the life.Board
//implements Universe interface
//all commands are executed one by one by the main loop, so readers never see a half updated board
type BaseUniverse struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	board struct {
		*life.Board
		sync.Mutex
	}
	seeder    *life.Seeder
	stateCh   chan Status
	views     struct {
		list []Viewer
		sync.Mutex
	}
	templates map[string]life.Template
	controlCh chan func()
	closeCh   chan bool
}

//NewBaseUniverse creates the BaseUniverse instance
//returns the error when the engine is unknown
func NewBaseUniverse(o *Options, stateCh chan Status) (*BaseUniverse, error) {
	opts := DefaultUniverseOptions
	if o != nil {
		opts = *o
	}
	store, err := life.NewStore(opts.Engine, opts.Width, opts.Height)
	if err != nil {
		return nil, errors.Wrap(err, "create universe")
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	opts.Advanced = map[string]interface{}{
		"engine": string(opts.Engine),
		"seed":   opts.Seed,
	}

	u := BaseUniverse{
		options:   opts,
		seeder:    life.NewSeededSeeder(opts.Seed),
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		stateCh:   stateCh,
		templates: map[string]life.Template{},
	}
	for _, tmpl := range life.Templates() {
		u.AddTemplate(tmpl)
	}
	u.board.Board = life.NewBoard(store)
	u.state.Details = make(map[string]interface{})

	u.refreshView()
	go u.mainLoop()
	return &u, nil
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (u *BaseUniverse) AddTemplate(tmpl life.Template) {
	u.templates[tmpl.Name] = tmpl
}

//Settle settles the universe with data
//coordinates outside the visible area are skipped
func (u *BaseUniverse) Settle(vc []life.Coord) {
	u.settle(u.seeder.Explicit(vc...))
	u.refreshView()
}

//SettleTemplate populates the universe with the seeding template placed at the top left corner
func (u *BaseUniverse) SettleTemplate(name string) {
	tmpl, ok := u.templates[name]
	if !ok {
		return
	}
	u.settle(tmpl.At(life.NewCoord(0, 0)))
	u.refreshView()
}

//SettleCell makes the single cell alive
func (u *BaseUniverse) SettleCell(row int, column int) {
	u.Settle([]life.Coord{life.NewCoord(row, column)})
}

//SettleWithRandomData clears the universe and populates the visible area with random data
func (u *BaseUniverse) SettleWithRandomData() {
	mode := u.Status().RunningMode
	if mode == RunningStateManual || mode == RunningStateFinished {
		u.controlCh <- u.clear
		u.controlCh <- func() {
			o := u.Options()
			u.settle(u.seeder.Random(life.NewRect(o.Width, o.Height), o.Density))
			u.refreshView()
		}
	}
}

//SettleScattered clears the universe and settles width*height/2 uniformly drawn cells of the visible area
//the same cell can be drawn more than once
func (u *BaseUniverse) SettleScattered() {
	mode := u.Status().RunningMode
	if mode == RunningStateManual || mode == RunningStateFinished {
		u.controlCh <- u.clear
		u.controlCh <- func() {
			o := u.Options()
			u.settle(u.seeder.Scatter(life.NewRect(o.Width, o.Height), o.Width*o.Height/2))
			u.refreshView()
		}
	}
}

//SetSpeed sets the simulation speed from the text input in updates per second
//the malformed input keeps the previous speed, 0 stops the running simulation
func (u *BaseUniverse) SetSpeed(input string) {
	u.controlCh <- func() {
		u.state.Lock()
		interval, pause := ParseSpeed(input, u.options.Interval)
		u.options.Interval = interval
		u.state.Unlock()
		if pause {
			u.stop()
		}
		u.refreshView()
	}
}

//ParseSpeed converts updates per second into the interval between the steps
//returns prev when the input is not the non-negative number, pause is set for 0
func ParseSpeed(input string, prev time.Duration) (interval time.Duration, pause bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return prev, false
	}
	if n == 0 {
		return prev, true
	}
	return time.Second / time.Duration(n), false
}

//Speed returns the interval as updates per second, 0 means unlimited
func Speed(interval time.Duration) int {
	if interval <= 0 {
		return 0
	}
	return int(time.Second / interval)
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
//can be called while the commands are executed by the main loop
func (u *BaseUniverse) RegisterViewer(v Viewer) {
	v.Register(u)
	u.views.Lock()
	u.views.list = append(u.views.list, v)
	u.views.Unlock()
}

//StateCh returns the channel with the universe's status updates
func (u *BaseUniverse) StateCh() chan Status {
	return u.stateCh
}

//Status returns current universe status represented by Status struct
func (u *BaseUniverse) Status() Status {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.Status
}

//Options returns current universe configuration represented by Options struct
func (u *BaseUniverse) Options() Options {
	u.state.Lock()
	defer u.state.Unlock()
	return u.options
}

//Area returns the visible part of the board [0,Height)x[0,Width)
func (u *BaseUniverse) Area() Area {
	o := u.Options()
	area := createArea(o.Width, o.Height)
	u.board.Lock()
	if bs, ok := u.board.Bounded(); ok {
		area = createArea(bs.Width(), bs.Height())
	}
	live := life.Collect(u.board.Cells())
	u.board.Unlock()
	visible := life.NewRect(area.Width, area.Height)
	for _, c := range live {
		if visible.Contains(c) {
			area.Entities[c.Row][c.Column] = true
		}
	}
	return area
}

//Run starts the universe simulation, returns immediately
func (u *BaseUniverse) Run() {
	u.controlCh <- u.run
}

//Stop stops the universe simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (u *BaseUniverse) Stop() {
	u.controlCh <- u.stop
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (u *BaseUniverse) Step() {
	u.controlCh <- u.step
}

//Clear clears the universe (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (u *BaseUniverse) Clear() {
	u.controlCh <- u.clear
}

//Close stops the main loop, returns immediately
func (u *BaseUniverse) Close() {
	u.closeCh <- true
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (u *BaseUniverse) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-u.controlCh:
			cmd()
		case c = <-u.closeCh:

		}
	}
}

//settle seeds the board skipping the coordinates outside the visible area
//the sparse board accepts any coordinate
func (u *BaseUniverse) settle(vc []life.Coord) {
	o := u.Options()
	visible := life.NewRect(o.Width, o.Height)
	u.board.Lock()
	_, bounded := u.board.Bounded()
	seed := make([]life.Coord, 0, len(vc))
	for _, c := range vc {
		if bounded && !visible.Contains(c) {
			continue
		}
		seed = append(seed, c)
	}
	u.board.Seed(seed)
	population := u.board.Population()
	u.board.Unlock()

	u.state.Lock()
	u.state.Population = population
	u.state.Unlock()
}

//switchRunningState switch the state of the universe to RunningState
//also writes the new state to the stateCh to signal upper control software
func (u *BaseUniverse) switchRunningState(to RunningState) {
	u.publish(u.setRunningState(to))
}

//setRunningState changes the running mode and returns the status snapshot
func (u *BaseUniverse) setRunningState(to RunningState) Status {
	u.state.Lock()
	defer u.state.Unlock()
	u.state.RunningMode = to
	return u.state.Status
}

//publish writes the status to the stateCh if any
func (u *BaseUniverse) publish(st Status) {
	if u.stateCh != nil {
		u.stateCh <- st
	}
}

//run starts the universe simulation
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (u *BaseUniverse) run() {
	go func() {
		u.switchRunningState(RunningStateRun)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := u.Status().RunningMode
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > u.Options().MaxSkippedTicks {
				u.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the universe is still in the calculation mode
			if mode != RunningStateStep {
				skipped = 0
				u.controlCh <- func() {
					u.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if interval := u.Options().Interval; interval > 0 {
				time.Sleep(interval)
			}
		}

	}()
}

//stop stops the universe running cycle
func (u *BaseUniverse) stop() {
	if u.Status().RunningMode == RunningStateRun {
		u.switchRunningState(RunningStateManual)
	}
}

//step does the board update
//the run is finished when MaxSteps is reached, the board is empty or the live cells are not changed
func (u *BaseUniverse) step() {
	finished := false
	rm := u.Status().RunningMode
	maxIter := u.Options().MaxSteps
	//views are refreshed before the status is published
	defer func() {
		mode := rm
		if finished {
			mode = RunningStateFinished
		}
		st := u.setRunningState(mode)
		u.refreshView()
		u.publish(st)
	}()

	if maxIter != 0 && u.Status().Generation >= maxIter {
		finished = true
		return
	}
	u.switchRunningState(RunningStateStep)
	isAlive, changed := u.nextIteration()
	if !isAlive || !changed {
		finished = true
	}
}

//clear clears the universe data, reset all counters
func (u *BaseUniverse) clear() {
	u.board.Lock()
	u.board.Reset(u.board.Cells().Blank())
	u.board.Unlock()

	u.state.Lock()
	u.state.Generation = 0
	u.state.Population = 0
	u.state.IterationTime = 0
	u.state.Details = make(map[string]interface{})
	u.state.Unlock()
	st := u.setRunningState(RunningStateManual)
	u.refreshView()
	u.publish(st)
}

//nextIteration does one simulation cycle
//the board replaces its cells with the next generation at once
func (u *BaseUniverse) nextIteration() (hasLiveEntities bool, changed bool) {
	u.board.Lock()
	start := time.Now()
	u.board.Update()
	elapsed := time.Since(start)
	generation, population := u.board.Generation(), u.board.Population()
	changed = u.board.Changed()
	details := map[string]interface{}{}
	if r, ok := life.Bounds(u.board.Cells()); ok {
		details["Bounding box"] = r
	}
	u.board.Unlock()

	u.state.Lock()
	u.state.Generation = generation
	u.state.Population = population
	u.state.IterationTime = elapsed
	u.state.Details = details
	u.state.Unlock()
	return population > 0, changed
}

//refreshView calls Refresh event for all registered views
func (u *BaseUniverse) refreshView() {
	u.views.Lock()
	views := append([]Viewer(nil), u.views.list...)
	u.views.Unlock()
	for _, v := range views {
		v.Refresh()
	}
}

//createArea allocate the new area
func createArea(width int, height int) Area {

	area := Area{Width: width, Height: height, Entities: make([][]life.Cell, height)}
	b := make([]life.Cell, width*height)
	for i := range area.Entities {
		start := width * i
		area.Entities[i] = b[start : start+width : start+width]
	}
	return area
}

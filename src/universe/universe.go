package universe

import (
	"time"

	"simlife/src/life"
)

type Universe interface {
	Status() Status
	Options() Options
	Area() Area
	StateCh() chan Status
	AddTemplate(tmpl life.Template)
	SettleTemplate(name string)
	SettleWithRandomData()
	SettleScattered()
	Settle(vc []life.Coord)
	SettleCell(row int, column int)
	SetSpeed(input string)
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Clear()
	Close()
}

//Area is the rectangular window of the board prepared for rendering
type Area struct {
	Width    int
	Height   int
	Entities [][]life.Cell
}

//Options represents the Universe's configurable options
type Options struct {
	Width           int                    `json:"width"`
	Height          int                    `json:"height"`
	Interval        time.Duration          `json:"interval"`
	MaxSteps        int                    `json:"max_steps"`
	MaxSkippedTicks int                    `json:"max_skipped_ticks"`
	Engine          life.Strategy          `json:"engine"`
	Density         float64                `json:"density"`
	Seed            int64                  `json:"seed"`
	Advanced        map[string]interface{} `json:"-"` //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	Population    int
	IterationTime time.Duration
	Details       map[string]interface{} //advanced details (engine specific)
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(u Universe)
	Start()
}

//The universe running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefWidth              = 64
	DefHeight             = 30
	DefMaxSkippedTicks    = 5
	DefEngine             = life.StrategyFlat
)

const (
	RunningStateManual   = 0x0
	RunningStateStep     = 0x1
	RunningStateRun      = 0x2
	RunningStateFinished = 0x3
)

var DefaultUniverseOptions = Options{
	Width:           DefWidth,
	Height:          DefHeight,
	Interval:        DefSimulationInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
	Engine:          DefEngine,
	Density:         life.DefaultDensity,
}

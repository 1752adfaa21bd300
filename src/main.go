package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"

	"simlife/src/life"
	"simlife/src/universe"
	"simlife/src/view"
)

const sampleTemplate = "mixed"

type EnvOptions struct {
	interactive bool
	text        bool
	gui         bool
	randomData  bool
	template    string
	config      string
}

func main() {
	eo, uo := initOptions()

	var stateCh chan universe.Status

	if !eo.interactive && !eo.gui {
		stateCh = make(chan universe.Status, 10) //the buffered channel to getting the universe status
	}

	u, err := universe.NewBaseUniverse(uo, stateCh)
	if err != nil {
		log.Fatal(err)
	}

	settle(u, eo)

	switch {
	case eo.interactive:
		v := view.NewViewTerminal()
		u.RegisterViewer(v)
		v.Start()
	case eo.gui:
		v := view.NewWindow(5)
		u.RegisterViewer(v)
		v.Start()
	case eo.text:
		v := view.NewTextOut(os.Stdout, os.Stdin, true)
		u.RegisterViewer(v)
		v.Start()
	default:
		if err := runHeadless(u, stateCh); err != nil {
			log.Fatal(err)
		}
	}
	u.Close()
}

//settle seeds the universe according to the command line
//the text mode without the pattern scatters width*height/2 cells
func settle(u universe.Universe, eo *EnvOptions) {
	switch {
	case eo.randomData:
		u.SettleWithRandomData()
	case eo.template != "":
		u.SettleTemplate(eo.template)
	case eo.text:
		u.SettleScattered()
	default:
		u.SettleTemplate(sampleTemplate)
	}
}

//runHeadless runs the simulation until it finishes or the process is interrupted
func runHeadless(u universe.Universe, stateCh chan universe.Status) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	out := view.NewConsoleOut()
	u.RegisterViewer(out)
	out.Start()

	g, ctx := errgroup.WithContext(ctx)
	finished := make(chan struct{})

	g.Go(func() error {
		defer close(finished)
		u.Run()
		started := false
		for st := range stateCh {
			if st.RunningMode == universe.RunningStateRun {
				started = true
			}
			if st.RunningMode == universe.RunningStateFinished {
				return nil
			}
			//random settling clears the universe before the run
			if started && st.RunningMode == universe.RunningStateManual {
				fmt.Printf("Stopped on generation %v\n", st.Generation)
				return nil
			}
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-finished:
		case <-ctx.Done():
			u.Stop()
		}
		return nil
	})

	return g.Wait()
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultUniverseOptions
	uo = &o
	eo = &EnvOptions{config: configPath(os.Args[1:])}
	//the file values become the defaults so the command line wins over them
	if eo.config != "" {
		loaded, err := universe.LoadOptions(eo.config, o)
		if err != nil {
			log.Fatal(err)
		}
		*uo = loaded
	}
	engineNames := make([]string, 0, len(life.Strategies()))
	for _, s := range life.Strategies() {
		engineNames = append(engineNames, string(s))
	}
	templateNames := make([]string, 0, len(life.Templates()))
	for _, t := range life.Templates() {
		templateNames = append(templateNames, t.Name)
	}
	engine := string(uo.Engine)

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&eo.config, "c", "config", "JSON configuration file, the flags override its values")
	flaggy.Int(&uo.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&uo.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&uo.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Float64(&uo.Density, "d", "density", "Probability of the cell to be alive on random settling")
	flaggy.Int64(&uo.Seed, "", "seed", "Random seed, 0 means the current time")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.text, "t", "text", "Start plain text mode, Enter does the step")
	flaggy.Bool(&eo.gui, "g", "gui", "Start the window (needs the ebiten build tag)")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.String(&eo.template, "p", "pattern", "Pattern to settle ["+strings.Join(templateNames, "|")+"], "+sampleTemplate+" by default, scattered cells in the text mode")
	flaggy.String(&engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")

	flaggy.Parse()

	uo.Engine = life.Strategy(engine)

	if err := uo.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	return
}

//configPath finds the configuration file argument before the flags are parsed
func configPath(args []string) string {
	for i, a := range args {
		for _, name := range []string{"-c", "--config"} {
			if a == name && i+1 < len(args) {
				return args[i+1]
			}
			if strings.HasPrefix(a, name+"=") {
				return strings.TrimPrefix(a, name+"=")
			}
		}
	}
	return ""
}

package view

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"simlife/src/universe"
)

//ConsoleOut prints the simulation progress, used in the non interactive mode
type ConsoleOut struct {
	u         universe.Universe
	w         io.Writer
	startTime time.Time
	every     int
}

func NewConsoleOut() *ConsoleOut {
	return NewConsoleOutTo(os.Stdout, 10)
}

//NewConsoleOutTo creates ConsoleOut writing to w and reporting every n-th generation
func NewConsoleOutTo(w io.Writer, every int) *ConsoleOut {
	if every <= 0 {
		every = 1
	}
	return &ConsoleOut{w: w, every: every}
}

func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	if st.RunningMode == universe.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last generation": st.Generation,
			"Total time":      totalTime,
			"Population":      st.Population,
		}
		_, _ = fmt.Fprintln(c.w, aurora.Red("\nFinished:"))
		c.printHashData(resultData)
	} else if st.RunningMode == universe.RunningStateRun || st.RunningMode == universe.RunningStateStep {
		if st.Generation != 0 && st.Generation%c.every == 0 {
			_, _ = fmt.Fprintf(c.w, "  Generation: %v, population: %v\n", st.Generation, st.Population)
		}
	}
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
	o := c.u.Options()
	_, _ = fmt.Fprintln(c.w, "Running configuration:")
	_, _ = fmt.Fprintf(c.w, "  Dimension: %v x %v\n", o.Width, o.Height)
	_, _ = fmt.Fprintf(c.w, "  Interval: %v\n", o.Interval)
	_, _ = fmt.Fprintf(c.w, "  Max iterations: %v steps\n", o.MaxSteps)
	c.printHashData(o.Advanced)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.w, "\nSimulation started...")
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", aurora.Green(propName), d[propName])
	}
}

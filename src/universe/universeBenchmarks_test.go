package universe

import (
	"testing"

	"simlife/src/life"
)

const (
	width  = 200
	height = 200
)

var testTemplate = life.Template{Name: "ts1", Coordinates: life.Mixed.Coordinates}

func universeStep(u Universe, b *testing.B) {
	u.AddTemplate(testTemplate)
	stateCh := u.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Clear()
		<-stateCh //wait for finish
		u.SettleTemplate("ts1")
		b.StartTimer()
		u.Step()
		waitFor(stateCh, RunningStateManual, RunningStateFinished)
	}
	u.Close()
}

func universeRun(u Universe, b *testing.B) {
	u.AddTemplate(testTemplate)
	stateCh := u.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Clear()
		<-stateCh //wait for finish
		u.SettleTemplate("ts1")
		b.StartTimer()
		u.Run()
		waitFor(stateCh, RunningStateFinished)
	}
	u.Close()
}

func newStateCh() chan Status {
	return make(chan Status, 10)
}

func newUniverseOptions(engine life.Strategy) *Options {
	o := DefaultUniverseOptions
	o.Interval = 0
	o.Width = width
	o.Height = height
	o.Engine = engine
	return &o
}

func newBenchUniverse(b *testing.B, engine life.Strategy) *BaseUniverse {
	u, err := NewBaseUniverse(newUniverseOptions(engine), newStateCh())
	if err != nil {
		b.Fatal(err)
	}
	return u
}

func Benchmark_Step(b *testing.B) {
	for _, e := range life.Strategies() {
		b.Run(string(e), func(b *testing.B) {
			universeStep(newBenchUniverse(b, e), b)
		})
	}
}

func Benchmark_Universe(b *testing.B) {
	for _, e := range life.Strategies() {
		b.Run(string(e), func(b *testing.B) {
			universeRun(newBenchUniverse(b, e), b)
		})
	}
}

func Benchmark_Evolve(b *testing.B) {
	for _, e := range life.Strategies() {
		b.Run(string(e), func(b *testing.B) {
			s, _ := life.NewStore(e, width, height)
			board := life.NewBoardSeeded(s, life.NewSeededSeeder(1).Random(life.NewRect(width, height), life.DefaultDensity))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board.Update()
			}
		})
	}
}

package life

import "testing"

func TestBoardSeed(t *testing.T) {
	for _, s := range Strategies() {
		t.Run(string(s), func(t *testing.T) {
			b := NewBoard(newTestStore(t, s))
			if added := b.Seed([]Coord{{1, 1}, {1, 1}}); added != 1 {
				t.Fatalf("Seed returned %d, expected 1", added)
			}
			if b.Population() != 1 {
				t.Fatalf("population %d after seeding the same cell twice", b.Population())
			}
			b.Seed([]Coord{{1, 1}, {2, 2}})
			if b.Population() != 2 || b.Cells().Len() != 2 {
				t.Fatalf("population %d, live cells %d, expected 2", b.Population(), b.Cells().Len())
			}
			if b.Generation() != 0 {
				t.Fatalf("seeding changed the generation to %d", b.Generation())
			}
		})
	}
}

func TestBoardInvariants(t *testing.T) {
	for _, s := range Strategies() {
		t.Run(string(s), func(t *testing.T) {
			seeder := NewSeededSeeder(42)
			b := NewBoardSeeded(newTestStore(t, s), seeder.Random(NewRect(testWidth, testHeight), 0.3))
			for i := 1; i <= 30; i++ {
				b.Update()
				if b.Generation() != i {
					t.Fatalf("generation %d after %d updates", b.Generation(), i)
				}
				if b.Population() != b.Cells().Len() {
					t.Fatalf("population %d, live cells %d", b.Population(), b.Cells().Len())
				}
			}
		})
	}
}

func TestBoardStrategiesAgree(t *testing.T) {
	seed := NewSeededSeeder(7).Random(NewRect(testWidth, testHeight), 0.35)
	flat := NewBoardSeeded(NewFlatStore(testWidth, testHeight), seed)
	grid := NewBoardSeeded(NewGridStore(testWidth, testHeight), seed)
	for i := 0; i < 25; i++ {
		flat.Update()
		grid.Update()
		if !Equal(flat.Cells(), grid.Cells()) {
			t.Fatalf("generation %d: flat and grid boards differ", flat.Generation())
		}
	}
}

func TestBoardEmpty(t *testing.T) {
	b := NewBoard(NewSparseStore())
	for i := 0; i < 5; i++ {
		b.Update()
	}
	if b.Population() != 0 || b.Generation() != 5 {
		t.Fatalf("population %d, generation %d", b.Population(), b.Generation())
	}
	if b.Changed() {
		t.Fatalf("empty board reported the change")
	}
}

func TestBoardChanged(t *testing.T) {
	b := NewBoardSeeded(NewSparseStore(), Block.Coordinates)
	b.Update()
	if b.Changed() {
		t.Fatalf("still life reported the change")
	}
	b = NewBoardSeeded(NewSparseStore(), Blinker.Coordinates)
	b.Update()
	if !b.Changed() {
		t.Fatalf("oscillator reported no change")
	}
}

func TestBoardExtent(t *testing.T) {
	b := NewBoard(NewFlatStore(8, 5))
	if b.Width() != 8 || b.Height() != 5 || b.Index(2, 3) != 19 {
		t.Fatalf("extent %dx%d index %d", b.Width(), b.Height(), b.Index(2, 3))
	}
	if _, ok := b.Bounded(); !ok {
		t.Fatalf("flat board is not bounded")
	}
	s := NewBoard(NewSparseStore())
	if s.Width() != 0 || s.Height() != 0 || s.Index(2, 3) != -1 {
		t.Fatalf("sparse board reported the extent")
	}
}

func TestBoardReset(t *testing.T) {
	b := NewBoardSeeded(NewGridStore(6, 6), Blinker.Coordinates)
	b.Update()
	b.Reset(b.Cells().Blank())
	if b.Generation() != 0 || b.Population() != 0 {
		t.Fatalf("generation %d population %d after reset", b.Generation(), b.Population())
	}
}

package life

import "testing"

func TestSeederRandom(t *testing.T) {
	region := Rect{Row: -3, Column: 2, Height: 20, Width: 30}

	a := NewSeededSeeder(1).Random(region, DefaultDensity)
	b := NewSeededSeeder(1).Random(region, DefaultDensity)
	if len(a) != len(b) {
		t.Fatalf("same seed produced %d and %d cells", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different cells at %d: %v and %v", i, a[i], b[i])
		}
		if !region.Contains(a[i]) {
			t.Fatalf("%v is outside the region", a[i])
		}
	}

	if n := len(NewSeededSeeder(1).Random(region, 0)); n != 0 {
		t.Fatalf("p=0 produced %d cells", n)
	}
	if n := len(NewSeededSeeder(1).Random(region, 1)); n != region.Area() {
		t.Fatalf("p=1 produced %d cells, expected %d", n, region.Area())
	}
}

func TestSeederScatter(t *testing.T) {
	region := NewRect(10, 4)
	seed := NewSeededSeeder(3).Scatter(region, 20)
	if len(seed) != 20 {
		t.Fatalf("Scatter produced %d cells", len(seed))
	}
	for _, c := range seed {
		if !region.Contains(c) {
			t.Fatalf("%v is outside the region", c)
		}
	}
	if NewSeededSeeder(3).Scatter(NewRect(0, 4), 5) != nil {
		t.Fatalf("Scatter over the empty region produced cells")
	}
}

func TestSeederExplicit(t *testing.T) {
	coords := []Coord{{1, 1}, {1, 1}, {0, 2}}
	seed := NewSeededSeeder(0).Explicit(coords...)
	coords[0] = NewCoord(9, 9)
	if len(seed) != 3 || seed[0] != NewCoord(1, 1) {
		t.Fatalf("Explicit returned %v", seed)
	}
	b := NewBoardSeeded(NewSparseStore(), seed)
	if b.Population() != 2 {
		t.Fatalf("population %d, expected 2", b.Population())
	}
}

func TestTemplateAt(t *testing.T) {
	got := Blinker.At(NewCoord(-1, 10))
	want := []Coord{{0, 10}, {0, 11}, {0, 12}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("At = %v, expected %v", got, want)
		}
	}
	if len(Templates()) != 4 {
		t.Fatalf("unexpected builtin templates %v", Templates())
	}
}

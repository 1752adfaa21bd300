package life

import "testing"

func TestNeighbours(t *testing.T) {
	c := NewCoord(-1, 4)
	seen := map[Coord]bool{}
	for _, n := range c.Neighbours() {
		if n == c {
			t.Fatalf("%v is its own neighbour", c)
		}
		dr, dc := n.Row-c.Row, n.Column-c.Column
		if dr < -1 || dr > 1 || dc < -1 || dc > 1 {
			t.Fatalf("%v is not adjacent to %v", n, c)
		}
		seen[n] = true
	}
	if len(seen) != 8 {
		t.Fatalf("%d distinct neighbours, expected 8", len(seen))
	}
	if c.String() != "(-1,4)" {
		t.Fatalf("String() = %q", c.String())
	}
}

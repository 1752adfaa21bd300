package life

import "fmt"

/*
	Dense store with one flat buffer addressed by row*width+column
	the extent is fixed on creation and can't grow
*/
type FlatStore struct {
	width  int
	height int
	cells  []Cell
}

func NewFlatStore(width int, height int) *FlatStore {
	return &FlatStore{width: width, height: height, cells: make([]Cell, width*height)}
}

func (s *FlatStore) Width() int {
	return s.width
}

func (s *FlatStore) Height() int {
	return s.height
}

//Index returns the position of the cell in the flat buffer
func (s *FlatStore) Index(row int, column int) int {
	return row*s.width + column
}

//Cells exposes the flat buffer for renderers, must not be modified
func (s *FlatStore) Cells() []Cell {
	return s.cells
}

func (s *FlatStore) inside(c Coord) bool {
	return c.Row >= 0 && c.Column >= 0 && c.Row < s.height && c.Column < s.width
}

func (s *FlatStore) Contains(c Coord) bool {
	if !s.inside(c) {
		return false
	}
	return bool(s.cells[s.Index(c.Row, c.Column)])
}

//Insert panics on the coordinate outside the extent
//a column past the width would silently alias the next row otherwise
func (s *FlatStore) Insert(c Coord) {
	if !s.inside(c) {
		panic(fmt.Sprintf("life: coordinate %v outside %dx%d board", c, s.width, s.height))
	}
	s.cells[s.Index(c.Row, c.Column)] = true
}

func (s *FlatStore) Each(fn func(c Coord)) {
	for i, e := range s.cells {
		if e {
			fn(Coord{Row: i / s.width, Column: i % s.width})
		}
	}
}

func (s *FlatStore) Len() int {
	n := 0
	for _, e := range s.cells {
		if e {
			n++
		}
	}
	return n
}

func (s *FlatStore) Blank() Store {
	return NewFlatStore(s.width, s.height)
}

package life

import (
	"github.com/pkg/errors"
)

type Cell bool

//Store keeps the set of live cells
//Evolve is written against this interface only, so every strategy evolves identically
type Store interface {
	Contains(c Coord) bool
	Insert(c Coord)
	Each(fn func(c Coord))
	Len() int
	Blank() Store
}

//Bounded is the Store with the fixed finite extent
//coordinates outside [0,Height)x[0,Width) are always dead
type Bounded interface {
	Store
	Width() int
	Height() int
	Index(row int, column int) int
}

//Strategy names the storage strategy
type Strategy string

const (
	StrategyFlat   Strategy = "flat"
	StrategyGrid   Strategy = "grid"
	StrategySparse Strategy = "sparse"
)

var ErrUnknownStrategy = errors.New("unknown storage strategy")

//Strategies returns all known strategy names
func Strategies() []Strategy {
	return []Strategy{StrategyFlat, StrategyGrid, StrategySparse}
}

//NewStore creates the empty store for the strategy
//width and height are ignored by the sparse strategy
func NewStore(s Strategy, width int, height int) (Store, error) {
	switch s {
	case StrategyFlat:
		return NewFlatStore(width, height), nil
	case StrategyGrid:
		return NewGridStore(width, height), nil
	case StrategySparse:
		return NewSparseStore(), nil
	}
	return nil, errors.Wrapf(ErrUnknownStrategy, "strategy %q", string(s))
}

//Equal reports whether both stores hold the same live set
func Equal(a Store, b Store) bool {
	if a.Len() != b.Len() {
		return false
	}
	equal := true
	a.Each(func(c Coord) {
		if equal && !b.Contains(c) {
			equal = false
		}
	})
	return equal
}

//Bounds returns the bounding box of the live cells
//ok is false for the empty store
func Bounds(s Store) (r Rect, ok bool) {
	var minRow, maxRow, minCol, maxCol int
	s.Each(func(c Coord) {
		if !ok {
			minRow, maxRow, minCol, maxCol = c.Row, c.Row, c.Column, c.Column
			ok = true
			return
		}
		minRow = min(minRow, c.Row)
		maxRow = max(maxRow, c.Row)
		minCol = min(minCol, c.Column)
		maxCol = max(maxCol, c.Column)
	})
	if !ok {
		return
	}
	return Rect{Row: minRow, Column: minCol, Height: maxRow - minRow + 1, Width: maxCol - minCol + 1}, true
}

//Collect returns the live cells of the store as a slice in unspecified order
func Collect(s Store) []Coord {
	cells := make([]Coord, 0, s.Len())
	s.Each(func(c Coord) {
		cells = append(cells, c)
	})
	return cells
}

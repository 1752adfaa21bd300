package life

//Board holds the live cells with the generation counter
//the population is recounted from the store after every update
type Board struct {
	cells      Store
	generation int
	population int
	changed    bool
}

//NewBoard creates the board over the store, the store may be already populated
func NewBoard(s Store) *Board {
	return &Board{cells: s, population: s.Len()}
}

//NewBoardSeeded creates the board over the store and seeds it
func NewBoardSeeded(s Store, seed []Coord) *Board {
	b := NewBoard(s)
	b.Seed(seed)
	return b
}

//Seed makes the cells alive and returns how many of them were dead before
//bounded boards panic on the coordinate outside the extent
func (b *Board) Seed(coords []Coord) (added int) {
	for _, c := range coords {
		if !b.cells.Contains(c) {
			added++
		}
		b.cells.Insert(c)
	}
	b.population += added
	return
}

//Update advances the board by exactly one generation
func (b *Board) Update() {
	next := Evolve(b.cells)
	b.changed = !Equal(b.cells, next)
	b.cells = next
	b.generation++
	b.population = next.Len()
}

//Reset replaces the cells with the store and zeroes the counters
func (b *Board) Reset(s Store) {
	b.cells = s
	b.generation = 0
	b.population = s.Len()
	b.changed = false
}

//Cells returns the current live cells, callers must not modify the store
func (b *Board) Cells() Store {
	return b.cells
}

func (b *Board) Generation() int {
	return b.generation
}

func (b *Board) Population() int {
	return b.population
}

//Changed reports whether the last Update changed the live set
func (b *Board) Changed() bool {
	return b.changed
}

//Bounded returns the store as Bounded when the board has the finite extent
func (b *Board) Bounded() (Bounded, bool) {
	bs, ok := b.cells.(Bounded)
	return bs, ok
}

//Width returns the board width, 0 for the unbounded board
func (b *Board) Width() int {
	if bs, ok := b.Bounded(); ok {
		return bs.Width()
	}
	return 0
}

//Height returns the board height, 0 for the unbounded board
func (b *Board) Height() int {
	if bs, ok := b.Bounded(); ok {
		return bs.Height()
	}
	return 0
}

//Index returns the flat buffer position of the cell, -1 for the unbounded board
func (b *Board) Index(row int, column int) int {
	if bs, ok := b.Bounded(); ok {
		return bs.Index(row, column)
	}
	return -1
}

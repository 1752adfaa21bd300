package life

/*
	Dense store with two-dimensional [row][column] addressing
	all rows share one backing buffer
*/
type GridStore struct {
	width  int
	height int
	rows   [][]Cell
}

func NewGridStore(width int, height int) *GridStore {
	return &GridStore{width: width, height: height, rows: createRows(width, height)}
}

func (s *GridStore) Width() int {
	return s.width
}

func (s *GridStore) Height() int {
	return s.height
}

//Index returns the row-major position of the cell, as the flat store does
func (s *GridStore) Index(row int, column int) int {
	return row*s.width + column
}

//Rows exposes the cells by row for renderers, must not be modified
func (s *GridStore) Rows() [][]Cell {
	return s.rows
}

func (s *GridStore) Contains(c Coord) bool {
	if c.Row < 0 || c.Column < 0 || c.Row >= s.height || c.Column >= s.width {
		return false
	}
	return bool(s.rows[c.Row][c.Column])
}

//Insert relies on the slice bounds check: the coordinate outside the extent panics
func (s *GridStore) Insert(c Coord) {
	s.rows[c.Row][c.Column] = true
}

func (s *GridStore) Each(fn func(c Coord)) {
	for r := range s.rows {
		for col, e := range s.rows[r] {
			if e {
				fn(Coord{Row: r, Column: col})
			}
		}
	}
}

func (s *GridStore) Len() int {
	n := 0
	s.Each(func(Coord) { n++ })
	return n
}

func (s *GridStore) Blank() Store {
	return NewGridStore(s.width, s.height)
}

//createRows allocates height rows of width cells over the single buffer
func createRows(width int, height int) [][]Cell {
	rows := make([][]Cell, height)
	b := make([]Cell, width*height)
	for i := range rows {
		start := width * i
		rows[i] = b[start : start+width : start+width]
	}
	return rows
}

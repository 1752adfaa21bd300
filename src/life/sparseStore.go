package life

/*
	Sparse store: only the live cells are materialized, absence means dead
	any coordinate is valid including negative ones, memory follows the population, not the area
*/
type SparseStore struct {
	cells map[Coord]struct{}
}

func NewSparseStore() *SparseStore {
	return &SparseStore{cells: make(map[Coord]struct{})}
}

func (s *SparseStore) Contains(c Coord) bool {
	_, ok := s.cells[c]
	return ok
}

func (s *SparseStore) Insert(c Coord) {
	s.cells[c] = struct{}{}
}

func (s *SparseStore) Each(fn func(c Coord)) {
	for c := range s.cells {
		fn(c)
	}
}

func (s *SparseStore) Len() int {
	return len(s.cells)
}

func (s *SparseStore) Blank() Store {
	return NewSparseStore()
}

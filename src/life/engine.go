package life

//Rule returns the next state of the cell (B3/S23)
func Rule(liveNeighbours int, alive bool) bool {
	if liveNeighbours < 2 {
		return false
	} else if liveNeighbours > 3 {
		return false
	} else if liveNeighbours == 3 {
		return true
	} else if liveNeighbours == 2 && alive {
		return true
	}
	return false
}

//LiveNeighbours counts the live cells around c
//neighbours outside a bounded store are dead, there is no wrap-around
func LiveNeighbours(s Store, c Coord) int {
	n := 0
	for _, o := range neighbourOffsets {
		if s.Contains(c.Offset(o[0], o[1])) {
			n++
		}
	}
	return n
}

//Evolve calculates the next generation into the new store of the same strategy
//cur is only read, so the result never depends on a partially built generation
func Evolve(cur Store) Store {
	next := cur.Blank()
	eachCandidate(cur, func(c Coord) {
		if Rule(LiveNeighbours(cur, c), cur.Contains(c)) {
			next.Insert(c)
		}
	})
	return next
}

//eachCandidate calls fn once for every cell which may be alive in the next generation
//bounded stores walk the entire extent,
//unbounded ones walk the live cells and their neighbours skipping already checked coordinates
func eachCandidate(s Store, fn func(c Coord)) {
	if b, ok := s.(Bounded); ok {
		for row := 0; row < b.Height(); row++ {
			for column := 0; column < b.Width(); column++ {
				fn(Coord{Row: row, Column: column})
			}
		}
		return
	}

	checked := make(map[Coord]struct{}, s.Len()*9)
	visit := func(c Coord) {
		if _, ok := checked[c]; ok {
			return
		}
		checked[c] = struct{}{}
		fn(c)
	}
	s.Each(func(c Coord) {
		visit(c)
		for _, n := range c.Neighbours() {
			visit(n)
		}
	})
}

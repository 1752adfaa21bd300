package life

import (
	"math/rand/v2"
)

//DefaultDensity is the probability of the cell to be alive on random seeding
const DefaultDensity = 0.1

//Rect is the rectangular region of the board
type Rect struct {
	Row    int
	Column int
	Height int
	Width  int
}

//NewRect returns the region [0,height)x[0,width)
func NewRect(width int, height int) Rect {
	return Rect{Height: height, Width: width}
}

func (r Rect) Contains(c Coord) bool {
	return c.Row >= r.Row && c.Column >= r.Column && c.Row < r.Row+r.Height && c.Column < r.Column+r.Width
}

//Area returns the number of cells in the region
func (r Rect) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

//Each walks the region in row-major order
func (r Rect) Each(fn func(c Coord)) {
	for row := r.Row; row < r.Row+r.Height; row++ {
		for column := r.Column; column < r.Column+r.Width; column++ {
			fn(Coord{Row: row, Column: column})
		}
	}
}

//Seeder produces the initial live cells
//the random source is injected so that the seed patterns can be reproduced
type Seeder struct {
	r *rand.Rand
}

func NewSeeder(r *rand.Rand) *Seeder {
	return &Seeder{r: r}
}

//NewSeededSeeder creates the Seeder over the deterministic PCG source
func NewSeededSeeder(seed int64) *Seeder {
	return NewSeeder(rand.New(rand.NewPCG(uint64(seed), 0)))
}

//Explicit returns the copy of the coordinates, duplicates are collapsed by the store
func (s *Seeder) Explicit(coords ...Coord) []Coord {
	seed := make([]Coord, len(coords))
	copy(seed, coords)
	return seed
}

//Random draws one Bernoulli trial with probability p for every cell of the region
func (s *Seeder) Random(region Rect, p float64) []Coord {
	p = min(max(p, 0), 1)
	seed := make([]Coord, 0, int(float64(region.Area())*p)+1)
	region.Each(func(c Coord) {
		if s.r.Float64() < p {
			seed = append(seed, c)
		}
	})
	return seed
}

//Scatter draws n uniformly distributed coordinates of the region, repetitions are possible
func (s *Seeder) Scatter(region Rect, n int) []Coord {
	if region.Area() == 0 {
		return nil
	}
	seed := make([]Coord, 0, n)
	for i := 0; i < n; i++ {
		seed = append(seed, Coord{
			Row:    region.Row + s.r.IntN(region.Height),
			Column: region.Column + s.r.IntN(region.Width),
		})
	}
	return seed
}

//Template represent the seeding template which can used to settle the board with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates []Coord //cells relative to the template origin
}

//At returns the template cells shifted to the origin
func (t Template) At(origin Coord) []Coord {
	seed := make([]Coord, len(t.Coordinates))
	for i, c := range t.Coordinates {
		seed[i] = origin.Offset(c.Row, c.Column)
	}
	return seed
}

var (
	Block = Template{"block", "2x2 still life", []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}

	Blinker = Template{"blinker", "period 2 oscillator", []Coord{{1, 0}, {1, 1}, {1, 2}}}

	Glider = Template{"glider", "moves one cell down and right every 4 generations", []Coord{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}}

	Mixed = Template{"mixed", "the test sample with several small patterns", []Coord{
		{1, 1}, {2, 1},
		{1, 2}, {2, 2},
		{3, 3},
		{2, 4},
		{3, 4},
		{3, 5},
	}}
)

//Templates returns the builtin templates
func Templates() []Template {
	return []Template{Block, Blinker, Glider, Mixed}
}

package life

import "fmt"

//Coord is the position of a cell on the board
//values are signed: sparse boards are conceptually infinite
type Coord struct {
	Row    int
	Column int
}

//neighbourOffsets lists the Moore neighbourhood as [row, column] deltas
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

//NewCoord creates the coordinate, no validation is done here
func NewCoord(row int, column int) Coord {
	return Coord{Row: row, Column: column}
}

//Offset returns the coordinate shifted by dr rows and dc columns
func (c Coord) Offset(dr int, dc int) Coord {
	return Coord{Row: c.Row + dr, Column: c.Column + dc}
}

//Neighbours returns the 8 surrounding coordinates
func (c Coord) Neighbours() (n [8]Coord) {
	for i, o := range neighbourOffsets {
		n[i] = c.Offset(o[0], o[1])
	}
	return
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}

// Package tetris implements the falling-block puzzle game: the shape
// catalog, the piece geometry, the playfield, and the simulation that
// ties them together. The package is pure logic with no terminal or
// Bubble Tea dependencies.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// ShapeDefinition is the immutable geometric template for one piece
// kind: a fixed-size occupancy grid plus the piece's color. The grid
// is never rotated in place; rotation is a coordinate transform
// applied by Piece.
type ShapeDefinition struct {
	Name  string
	W, H  int
	Color core.Color
	rows  []string // 'X' = occupied, '.' = empty
}

// Occupied reports whether the unrotated shape grid covers (row, col).
// Out-of-grid coordinates are unoccupied.
func (s *ShapeDefinition) Occupied(row, col int) bool {
	if row < 0 || row >= s.H || col < 0 || col >= s.W {
		return false
	}
	return s.rows[row][col] == 'X'
}

// Shapes is the catalog of the seven piece kinds.
var Shapes = [7]ShapeDefinition{
	{
		Name: "I", W: 4, H: 4, Color: core.ColorCyan,
		rows: []string{
			"....",
			"XXXX",
			"....",
			"....",
		},
	},
	{
		Name: "J", W: 3, H: 3, Color: core.ColorBlue,
		rows: []string{
			"X..",
			"XXX",
			"...",
		},
	},
	{
		Name: "L", W: 3, H: 3, Color: core.ColorOrange,
		rows: []string{
			"..X",
			"XXX",
			"...",
		},
	},
	{
		Name: "O", W: 2, H: 2, Color: core.ColorWhite,
		rows: []string{
			"XX",
			"XX",
		},
	},
	{
		Name: "S", W: 3, H: 3, Color: core.ColorGreen,
		rows: []string{
			".XX",
			"XX.",
			"...",
		},
	},
	{
		Name: "T", W: 3, H: 3, Color: core.ColorPurple,
		rows: []string{
			".X.",
			"XXX",
			"...",
		},
	},
	{
		Name: "Z", W: 3, H: 3, Color: core.ColorRed,
		rows: []string{
			"XX.",
			".XX",
			"...",
		},
	},
}

// ShapeByName returns the catalog entry with the given name, or nil.
func ShapeByName(name string) *ShapeDefinition {
	for i := range Shapes {
		if Shapes[i].Name == name {
			return &Shapes[i]
		}
	}
	return nil
}

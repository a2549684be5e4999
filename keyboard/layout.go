package keyboard

// Base is the unshifted US-QWERTY grid. The bottom row is the space bar:
// the key itself spans several cells, the rest of the row is padding.
var Base = Layout{
	name: "base",
	rows: [][]rune{
		{'`', '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '-', '='},
		{'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p', '[', ']', '\\'},
		{'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';', '\''},
		{'z', 'x', 'c', 'v', 'b', 'n', 'm', ',', '.', '/'},
		{noKey, noKey, noKey, ' ', ' ', ' ', ' ', ' ', noKey, noKey, noKey, noKey},
	},
}

// Shifted is the shifted US-QWERTY grid. Its space-bar row is all padding:
// the space character belongs to Base alone, keeping the two grids disjoint.
var Shifted = Layout{
	name: "shifted",
	rows: [][]rune{
		{'~', '!', '@', '#', '$', '%', '^', '&', '*', '(', ')', '_', '+'},
		{'Q', 'W', 'E', 'R', 'T', 'Y', 'U', 'I', 'O', 'P', '{', '}', '|'},
		{'A', 'S', 'D', 'F', 'G', 'H', 'J', 'K', 'L', ':', '"'},
		{'Z', 'X', 'C', 'V', 'B', 'N', 'M', '<', '>', '?'},
		{noKey, noKey, noKey, noKey, noKey, noKey, noKey, noKey, noKey, noKey, noKey, noKey},
	},
}

// Contains reports whether c appears anywhere in the grid.
// Padding cells never match. Complexity: O(k) over the grid cells.
func (l *Layout) Contains(c rune) bool {
	_, err := l.CoordinateOf(c)

	return err == nil
}

// CoordinateOf returns the (row, column) position of c within this grid, or
// a CharacterNotFoundError if c is absent from this specific layout.
// When a key spans several cells (the space bar), the leftmost cell wins.
// Complexity: O(k) over the grid cells.
func (l *Layout) CoordinateOf(c rune) (Coordinate, error) {
	for row, cells := range l.rows {
		for col, cell := range cells {
			if cell == noKey {
				continue
			}
			if cell == c {
				return Coordinate{Row: row, Col: col}, nil
			}
		}
	}

	return Coordinate{}, &CharacterNotFoundError{Char: c}
}

// Package keyboard defines core types and sentinel errors for the keyboard
// subpackage of github.com/m0rff/TypoDistance.
package keyboard

import (
	"errors"
	"fmt"
	"math"
)

// ErrCharacterNotFound indicates a character is absent from the queried
// keyboard grid(s). All lookup failures in this package unwrap to it.
var ErrCharacterNotFound = errors.New("keyboard: character not found in layout")

// CharacterNotFoundError reports which rune failed a layout lookup.
// It unwraps to ErrCharacterNotFound, so callers may match it with either
// errors.Is or errors.As.
type CharacterNotFoundError struct {
	Char rune
}

// Error implements the error interface.
func (e *CharacterNotFoundError) Error() string {
	return fmt.Sprintf("keyboard: character %q not found in layout", e.Char)
}

// Unwrap ties the structured error to the package sentinel.
func (e *CharacterNotFoundError) Unwrap() error { return ErrCharacterNotFound }

// Coordinate identifies a key's position inside whichever layout contains it:
// Row counts grid rows top to bottom, Col counts cells left to right.
// Coordinates from different layouts share one abstract plane, because a
// shifted key occupies the same physical spot as its unshifted twin.
type Coordinate struct {
	Row, Col int
}

// DistanceTo returns the 2D Euclidean distance between two key positions.
// Complexity: O(1).
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	dr := float64(c.Row - other.Row)
	dc := float64(c.Col - other.Col)

	return math.Sqrt(dr*dr + dc*dc)
}

// noKey marks a grid cell with no physical key behind it (padding around the
// space bar). Scans skip such cells, so they can never satisfy a lookup.
const noKey rune = 0

// Layout is one static keyboard character grid. Rows may differ in length,
// mirroring the stagger of a physical board. Layouts are immutable after
// package initialization; the only two instances are Base and Shifted.
type Layout struct {
	name string
	rows [][]rune
}

// Name returns the layout's identifier ("base" or "shifted").
func (l *Layout) Name() string { return l.name }

// Package typodist defines the cost weights and sentinel errors for the
// typodist subpackage of github.com/m0rff/TypoDistance.
package typodist

import "errors"

// Cost weights of the edit operations. They are deliberate constants: the
// metric is defined by them, and no runtime tuning surface exists.
//
//   - ShiftCost is added whenever an edit crosses shift states, i.e. the two
//     characters involved resolve to different layouts.
//   - InsertionCost exceeds DeletionCost, which makes the metric directional:
//     a typist misses keystrokes more readily than adding spurious ones.
//   - SubstitutionCost is the cheapest base weight; the real price of a
//     substitution comes from the shift and key-distance terms on top.
const (
	// ShiftCost penalizes edits whose characters need different modifier states.
	ShiftCost = 3.0
	// InsertionCost is the base price of typing a character that should not be there.
	InsertionCost = 3.0
	// DeletionCost is the flat price of a missed keystroke.
	DeletionCost = 2.5
	// SubstitutionCost is the base price of hitting one key instead of another.
	SubstitutionCost = 1.0
)

// ErrNoCandidates indicates Nearest received no candidate whose characters
// all sit on the keyboard grids.
var ErrNoCandidates = errors.New("typodist: no usable candidate")

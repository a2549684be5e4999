// Package keyboard models the geometry of a physical US-QWERTY keyboard as
// two immutable character grids and answers distance questions about keys.
//
// What:
//
//   - Base and Shifted hold the unshifted and shifted variants of one
//     physical layout; every supported character lives in exactly one grid.
//   - Coordinate locates a character as (row, column) within its grid.
//   - Euclidean measures straight-line key separation, treating both grids
//     as the same physical plane (shifted keys share their base key's spot).
//   - Adjacent reports whether two keys sit next to each other.
//
// Why:
//
//   - Typo modeling: a slip onto a neighboring key is far more likely than a
//     reach across the board.
//   - Shift-state detection: callers learn whether two characters require
//     different modifier states by comparing their resolved layouts.
//
// Complexity:
//
//   - Contains / CoordinateOf / LayoutFor: O(k) linear scan, k ≤ ~70 cells.
//   - Euclidean / Adjacent: O(k), two lookups plus O(1) arithmetic.
//
// Errors:
//
//   - ErrCharacterNotFound: a character is absent from the queried grid(s).
//     Lookup failures carry the offending rune via CharacterNotFoundError.
//
// The grids are package-level constants in all but the Go keyword sense:
// nothing mutates them after initialization, so every operation here is safe
// for unlimited concurrent use.
package keyboard

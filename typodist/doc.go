// Package typodist computes a directional, keyboard-geometry-weighted edit
// distance: how plausibly the second string is an accidental typo of the
// first, on a physical US-QWERTY keyboard.
//
// What:
//
//   - TypoDistance fills an O(n·m) dynamic-programming table whose edit
//     costs come from key proximity and shift-state agreement rather than
//     the uniform weights of classic Levenshtein distance.
//   - Deletion is a flat DeletionCost: a missed keystroke does not depend on
//     what should have been typed.
//   - Insertion and substitution are character-aware: both add ShiftCost
//     when the characters involved need different modifier states, plus the
//     Euclidean distance between their keys.
//   - Nearest ranks candidate strings by their typo distance from an input.
//
// Why:
//
//   - Spell correction and "did you mean" suggestions that prefer fat-finger
//     slips over arbitrary edits.
//   - Typosquat and look-alike detection for names users type by hand.
//
// Asymmetry:
//
//	TypoDistance(a, b) generally differs from TypoDistance(b, a). Insertion
//	outweighs deletion, modeling a typist who is likelier to miss a keystroke
//	than to add a spurious one, and the boundary conditions of the table are
//	built differently for the two directions.
//
// Complexity:
//
//   - Time: O(n·m) cells, each an O(k) layout lookup with k ≤ ~70.
//   - Memory: O(n·m), allocated fresh per call and safe for concurrent use.
//
// Errors:
//
//   - keyboard.ErrCharacterNotFound: an input contains a character on neither
//     grid; the failure carries the rune and no partial result is produced.
//   - ErrNoCandidates: Nearest was given no usable candidate.
package typodist

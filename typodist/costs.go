package typodist

import "github.com/m0rff/TypoDistance/keyboard"

// deletionCost prices removing one character from the first string. A missed
// keystroke costs the same whatever the key, so no character context exists.
func deletionCost() float64 {
	return DeletionCost
}

// shiftMismatch reports whether c1 and c2 require different shift states,
// i.e. resolve to different layouts.
func shiftMismatch(c1, c2 rune) (bool, error) {
	l1, err := keyboard.LayoutFor(c1)
	if err != nil {
		return false, err
	}
	l2, err := keyboard.LayoutFor(c2)
	if err != nil {
		return false, err
	}

	return l1 != l2, nil
}

// insertionCost prices inserting c immediately after position i in s. The
// character already at position i stands in for the keystroke the typist was
// aiming at: an insertion whose shift state or key position strays from that
// neighbor is a less plausible slip and pays for it. With no reference
// character available (s empty or i out of range), the base cost stands alone.
func insertionCost(s []rune, i int, c rune) (float64, error) {
	if len(s) == 0 || i < 0 || i >= len(s) {
		return InsertionCost, nil
	}

	cost := InsertionCost
	mismatch, err := shiftMismatch(s[i], c)
	if err != nil {
		return 0, err
	}
	if mismatch {
		cost += ShiftCost
	}
	dist, err := keyboard.Euclidean(s[i], c)
	if err != nil {
		return 0, err
	}

	return cost + dist, nil
}

// substitutionCost prices replacing the character at position i in s with c:
// the base weight, plus the shift penalty when the two characters live on
// different layouts, plus the Euclidean distance between their keys.
// Out-of-range positions fall back to the plain insertion weight; only
// boundary bookkeeping ever reaches that branch.
func substitutionCost(s []rune, i int, c rune) (float64, error) {
	if len(s) == 0 || i < 0 || i >= len(s) {
		return InsertionCost, nil
	}

	cost := SubstitutionCost
	mismatch, err := shiftMismatch(s[i], c)
	if err != nil {
		return 0, err
	}
	if mismatch {
		cost += ShiftCost
	}
	dist, err := keyboard.Euclidean(s[i], c)
	if err != nil {
		return 0, err
	}

	return cost + dist, nil
}

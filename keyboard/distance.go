package keyboard

// adjacencyLimit is the largest key separation still counted as adjacent:
// it admits orthogonal (1.0) and diagonal (√2) neighbors, nothing farther.
const adjacencyLimit = 1.5

// LayoutFor resolves which layout c belongs to, trying Base before Shifted.
// The grids are disjoint, so the order only matters for the scan, not the
// answer. Returns a CharacterNotFoundError when c sits on neither grid,
// which marks c as outside the supported key set entirely.
func LayoutFor(c rune) (*Layout, error) {
	if Base.Contains(c) {
		return &Base, nil
	}
	if Shifted.Contains(c) {
		return &Shifted, nil
	}

	return nil, &CharacterNotFoundError{Char: c}
}

// Euclidean returns the straight-line distance between the keys of c1 and c2.
// Each character is located within its own layout; the layout identity is
// then discarded and both coordinates are compared on one shared plane, since
// a shifted key sits on the same physical key as its unshifted counterpart.
// Complexity: O(k) for the two lookups.
func Euclidean(c1, c2 rune) (float64, error) {
	l1, err := LayoutFor(c1)
	if err != nil {
		return 0, err
	}
	p1, err := l1.CoordinateOf(c1)
	if err != nil {
		return 0, err
	}
	l2, err := LayoutFor(c2)
	if err != nil {
		return 0, err
	}
	p2, err := l2.CoordinateOf(c2)
	if err != nil {
		return 0, err
	}

	return p1.DistanceTo(p2), nil
}

// Adjacent reports whether the keys of c1 and c2 neighbor each other on the
// physical board, counting diagonal neighbors and the key itself.
// Complexity: O(k).
func Adjacent(c1, c2 rune) (bool, error) {
	d, err := Euclidean(c1, c2)
	if err != nil {
		return false, err
	}

	return d < adjacencyLimit, nil
}

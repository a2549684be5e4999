package typodist

import "math"

// Nearest returns the candidate the user most plausibly intended when typing
// typed: the one minimizing TypoDistance(candidate, typed), together with
// that distance. The candidate takes the source position because the metric
// is directional and reads "typed is an accidental rendition of candidate".
//
// Candidates containing characters outside the keyboard grids are not
// rankable and are skipped; ties keep the earlier candidate. Returns
// ErrNoCandidates when nothing usable remains, or the lookup failure when
// typed itself contains an unsupported character.
//
// Complexity: O(len(candidates) · n·m) over the pairwise distances.
func Nearest(typed string, candidates []string) (string, float64, error) {
	if err := validate([]rune(typed)); err != nil {
		return "", 0, err
	}

	best, bestDist, found := "", math.Inf(1), false
	for _, cand := range candidates {
		dist, err := TypoDistance(cand, typed)
		if err != nil {
			continue
		}
		if !found || dist < bestDist {
			best, bestDist, found = cand, dist, true
		}
	}
	if !found {
		return "", 0, ErrNoCandidates
	}

	return best, bestDist, nil
}

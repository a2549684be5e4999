// Package typodistance estimates how plausible it is that one string is an
// accidental keystroke-level typo of another, using a keyboard-geometry
// weighted, deliberately asymmetric edit distance.
//
// 🚀 What is TypoDistance?
//
//	A small, dependency-light library that replaces the uniform costs of
//	classic Levenshtein distance with physical-keyboard knowledge:
//		• Key proximity: substituting 'e' for 'r' (adjacent keys) is cheaper
//		  than substituting 'e' for 'i' (half a row away)
//		• Shift state: swapping 'a' for 'A' pays a modifier-key penalty even
//		  though both live on the same physical key
//		• Direction: missing a keystroke (deletion) is cheaper than adding a
//		  spurious one (insertion), so the metric is intentionally asymmetric
//
// ✨ Why choose TypoDistance?
//
//   - Minimal API – one call, typodist.TypoDistance(s1, s2)
//   - Deterministic & allocation-bounded – a fresh O(n·m) table per call
//   - Concurrency-safe – only immutable layout constants are shared
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	keyboard/ — QWERTY grids (base & shifted), coordinates, Euclidean key distance
//	typodist/ — edit-cost functions, the DP solver, and candidate ranking
//
// Quick ASCII example:
//
//	q w [e][r] t y u [i] o p
//	 a s d f g h j k l
//	  z x c v b n m
//
//	'e'→'r' is one key over; 'e'→'i' is five. TypoDistance charges accordingly.
//
// Dive into README.md for full examples and the cost model walkthrough.
//
//	go get github.com/m0rff/TypoDistance/typodist
package typodistance

package typodist

import (
	"testing"

	"github.com/m0rff/TypoDistance/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeletionCost confirms deletion is a flat weight with no character context.
func TestDeletionCost(t *testing.T) {
	assert.Equal(t, DeletionCost, deletionCost())
}

// TestShiftMismatch covers same-layout, cross-layout, and unsupported runes.
func TestShiftMismatch(t *testing.T) {
	mismatch, err := shiftMismatch('a', 's')
	require.NoError(t, err)
	assert.False(t, mismatch, "two base keys share a shift state")

	mismatch, err = shiftMismatch('a', 'A')
	require.NoError(t, err)
	assert.True(t, mismatch, "a key and its shifted twin differ in shift state")

	_, err = shiftMismatch('a', '€')
	assert.ErrorIs(t, err, keyboard.ErrCharacterNotFound)
}

// TestInsertionCost_NoReference verifies the base cost stands alone when no
// reference character exists: empty string or an out-of-range position.
func TestInsertionCost_NoReference(t *testing.T) {
	cost, err := insertionCost(nil, 0, 'x')
	require.NoError(t, err)
	assert.Equal(t, InsertionCost, cost, "empty string leaves the base cost alone")

	cost, err = insertionCost([]rune("cat"), 3, 'x')
	require.NoError(t, err)
	assert.Equal(t, InsertionCost, cost, "position past the end leaves the base cost alone")

	cost, err = insertionCost([]rune("cat"), -1, 'x')
	require.NoError(t, err)
	assert.Equal(t, InsertionCost, cost, "negative position leaves the base cost alone")
}

// TestInsertionCost_ShiftAndDistance verifies the shift penalty and the
// Euclidean term are added on top of the base cost.
func TestInsertionCost_ShiftAndDistance(t *testing.T) {
	// Reference 'a', inserted 's': same layout, neighboring keys.
	cost, err := insertionCost([]rune("cat"), 1, 's')
	require.NoError(t, err)
	assert.InDelta(t, InsertionCost+1.0, cost, 1e-12)

	// Reference 'a', inserted 'S': same key distance plus the shift penalty.
	cost, err = insertionCost([]rune("cat"), 1, 'S')
	require.NoError(t, err)
	assert.InDelta(t, InsertionCost+ShiftCost+1.0, cost, 1e-12)
}

// TestSubstitutionCost_OutOfRange checks the boundary fallback, which is the
// insertion weight rather than the substitution weight.
func TestSubstitutionCost_OutOfRange(t *testing.T) {
	cost, err := substitutionCost(nil, 0, 'x')
	require.NoError(t, err)
	assert.Equal(t, InsertionCost, cost)

	cost, err = substitutionCost([]rune("cat"), 3, 'x')
	require.NoError(t, err)
	assert.Equal(t, InsertionCost, cost)
}

// TestSubstitutionCost_ShiftedTwin verifies replacing a key with its shifted
// twin costs exactly the base weight plus the shift penalty: the two
// characters share a physical key, so the distance term is zero.
func TestSubstitutionCost_ShiftedTwin(t *testing.T) {
	cost, err := substitutionCost([]rune("a"), 0, 'A')
	require.NoError(t, err)
	assert.Equal(t, SubstitutionCost+ShiftCost, cost)
}

// TestSubstitutionCost_Proximity verifies nearer keys are cheaper to confuse.
func TestSubstitutionCost_Proximity(t *testing.T) {
	near, err := substitutionCost([]rune("e"), 0, 'r')
	require.NoError(t, err)
	far, err := substitutionCost([]rune("e"), 0, 'i')
	require.NoError(t, err)

	assert.InDelta(t, SubstitutionCost+1.0, near, 1e-12, "'r' is one key from 'e'")
	assert.InDelta(t, SubstitutionCost+5.0, far, 1e-12, "'i' is five keys from 'e'")
	assert.Less(t, near, far)
}

// TestCosts_UnsupportedRune ensures lookup failures surface from the cost
// functions instead of producing a number.
func TestCosts_UnsupportedRune(t *testing.T) {
	_, err := insertionCost([]rune("€x"), 0, 'a')
	assert.ErrorIs(t, err, keyboard.ErrCharacterNotFound)

	_, err = substitutionCost([]rune("ab"), 1, '€')
	assert.ErrorIs(t, err, keyboard.ErrCharacterNotFound)
}

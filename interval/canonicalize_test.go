package interval

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCanonicalize_HalfOpen tests the canonical [a, b) form of discrete intervals.
func TestCanonicalize_HalfOpen(t *testing.T) {
	closedInterval, err := Closed(1, 4)
	require.NoError(t, err)

	canonical, err := closedInterval.Canonical()
	require.NoError(t, err)
	assert.Equal(t, "[1, 5)", canonical.String())
	assert.Equal(t, IntValue(1), canonical.LowerEndPoint().Value())
	assert.Equal(t, IntValue(5), canonical.UpperEndPoint().Value())
	assert.Equal(t, BoundTypeOpen, canonical.UpperBoundType())

	assert.True(t, canonical.Equal(closedInterval), "canonicalization never changes the covered points")
	assert.Equal(t, closedInterval.Hash(), canonical.Hash(), "equivalent representations must hash identically")
}

// TestCanonicalize_Closed tests rewriting an open interval into its closed form.
func TestCanonicalize_Closed(t *testing.T) {
	openInterval, err := Open(1, 7)
	require.NoError(t, err)

	closedForm, err := openInterval.Canonicalize(BoundTypeClosed, BoundTypeClosed)
	require.NoError(t, err)
	assert.Equal(t, IntValue(2), closedForm.LowerEndPoint().Value())
	assert.Equal(t, IntValue(6), closedForm.UpperEndPoint().Value())
	assert.True(t, closedForm.Closed())
	assert.True(t, closedForm.Equal(openInterval))
}

// TestCanonicalize_OpenLower tests moving the lower bound outward for an open representation.
func TestCanonicalize_OpenLower(t *testing.T) {
	closedInterval, err := Closed(1, 7)
	require.NoError(t, err)

	openLowerForm, err := closedInterval.Canonicalize(BoundTypeOpen, BoundTypeClosed)
	require.NoError(t, err)
	assert.Equal(t, "(0, 7]", openLowerForm.String())
	assert.True(t, openLowerForm.Equal(closedInterval))
	assert.Equal(t, closedInterval.Hash(), openLowerForm.Hash())

	contains, err := openLowerForm.Contains(closedInterval)
	require.NoError(t, err)
	assert.True(t, contains, "the rewritten form covers exactly the same points")
}

// TestCanonicalize_Date tests canonicalization over the day grid.
func TestCanonicalize_Date(t *testing.T) {
	dateInterval, err := Closed(
		time.Date(2000, time.February, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2000, time.February, 6, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	canonical, err := dateInterval.Canonical()
	require.NoError(t, err)
	assert.Equal(t, 7, canonical.UpperEndPoint().Value().(DateValue).Time().Day(), "the open upper bound moves outward by one day")
	assert.True(t, canonical.Equal(dateInterval))
}

// TestCanonicalize_Stepped tests that bounds move by whole steps, not single units.
func TestCanonicalize_Stepped(t *testing.T) {
	steppedInterval, err := Closed(0, 6, WithStep(3))
	require.NoError(t, err)

	canonical, err := steppedInterval.Canonical()
	require.NoError(t, err)
	assert.Equal(t, IntValue(9), canonical.UpperEndPoint().Value(), "the bound moves outward by one whole step")
	assert.True(t, canonical.Equal(steppedInterval))
}

// TestCanonicalize_Unsupported tests that continuous and empty intervals keep their representation.
func TestCanonicalize_Unsupported(t *testing.T) {
	floatInterval, err := Closed(1.0, 4.0)
	require.NoError(t, err)
	_, err = floatInterval.Canonical()
	assert.True(t, errors.Is(err, ErrUnsupportedOperation), "continuous bounds can not move without changing coverage")

	emptyInterval, err := OpenClosed(1, 1)
	require.NoError(t, err)
	canonical, err := emptyInterval.Canonical()
	require.NoError(t, err)
	assert.True(t, canonical.Empty(), "the empty interval is its own canonical form")
}

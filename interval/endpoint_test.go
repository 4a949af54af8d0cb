package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEndPoint_Unbounded tests the nil-receiver convention for missing bounds.
func TestEndPoint_Unbounded(t *testing.T) {
	var unbounded *EndPoint
	assert.True(t, unbounded.Unbounded())
	assert.False(t, unbounded.Inclusive())
	assert.Panics(t, func() { unbounded.Value() }, "an unbounded EndPoint has no value")

	bounded := NewEndPoint(IntValue(3), BoundTypeClosed)
	assert.False(t, bounded.Unbounded())
	assert.True(t, bounded.Inclusive())
	assert.Equal(t, IntValue(3), bounded.Value())
}

// TestEndPoint_CompareLower tests the ordering of lower bounds.
func TestEndPoint_CompareLower(t *testing.T) {
	var unbounded *EndPoint
	closedAtThree := NewEndPoint(IntValue(3), BoundTypeClosed)
	openAtThree := NewEndPoint(IntValue(3), BoundTypeOpen)
	closedAtFive := NewEndPoint(IntValue(5), BoundTypeClosed)

	assert.Equal(t, -1, compareLowerEndPoints(unbounded, closedAtThree), "no lower bound reaches further down than any value")
	assert.Equal(t, 1, compareLowerEndPoints(closedAtThree, unbounded))
	assert.Equal(t, 0, compareLowerEndPoints(unbounded, unbounded))

	assert.Equal(t, -1, compareLowerEndPoints(closedAtThree, closedAtFive))
	assert.Equal(t, -1, compareLowerEndPoints(closedAtThree, openAtThree), "at the same value the inclusive lower bound starts earlier")
	assert.Equal(t, 0, compareLowerEndPoints(closedAtThree, closedAtThree))
}

// TestEndPoint_CompareUpper tests the ordering of upper bounds.
func TestEndPoint_CompareUpper(t *testing.T) {
	var unbounded *EndPoint
	closedAtThree := NewEndPoint(IntValue(3), BoundTypeClosed)
	openAtThree := NewEndPoint(IntValue(3), BoundTypeOpen)
	closedAtFive := NewEndPoint(IntValue(5), BoundTypeClosed)

	assert.Equal(t, 1, compareUpperEndPoints(unbounded, closedAtFive), "no upper bound reaches further up than any value")
	assert.Equal(t, -1, compareUpperEndPoints(closedAtFive, unbounded))

	assert.Equal(t, -1, compareUpperEndPoints(closedAtThree, closedAtFive))
	assert.Equal(t, 1, compareUpperEndPoints(closedAtThree, openAtThree), "at the same value the inclusive upper bound reaches further")
}

// TestEndPoint_Bytes tests the wire form round trip.
func TestEndPoint_Bytes(t *testing.T) {
	endPoint := NewEndPoint(FloatValue(2.5), BoundTypeOpen)
	restoredEndPoint, consumedBytes, err := EndPointFromBytes(endPoint.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(endPoint.Bytes()), consumedBytes)
	assert.Equal(t, endPoint.BoundType(), restoredEndPoint.BoundType())
	assert.Zero(t, endPoint.Value().Compare(restoredEndPoint.Value()))
}

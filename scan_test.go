package peakwindow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClassify covers the three-valued shape classifier, including the
// rule that NaN operands classify as flat (a direct comparison, not a
// subtraction, so it falls out of Go's float semantics for free).
func TestClassify(t *testing.T) {
	assert.Equal(t, tokenUp, classify(1, 2))
	assert.Equal(t, tokenDown, classify(2, 1))
	assert.Equal(t, tokenFlat, classify(1, 1))
	assert.Equal(t, tokenFlat, classify(1, math.NaN()))
	assert.Equal(t, tokenFlat, classify(math.NaN(), 1))
}

// TestStrictlyGreater confirms NaN operands never compare as greater.
func TestStrictlyGreater(t *testing.T) {
	assert.True(t, strictlyGreater(2, 1))
	assert.False(t, strictlyGreater(1, 2))
	assert.False(t, strictlyGreater(1, 1))
	assert.False(t, strictlyGreater(math.NaN(), 1))
	assert.False(t, strictlyGreater(1, math.NaN()))
}

// TestIndexStack_PushRejectsNonIncreasing verifies the idempotent push
// invariant PrevStack/NextStack rely on.
func TestIndexStack_PushRejectsNonIncreasing(t *testing.T) {
	s := newIndexStack(4)
	s.push(2)
	s.push(2) // no-op: not strictly greater
	s.push(1) // no-op: not strictly greater
	s.push(5)
	assert.Equal(t, []int{2, 5}, s.idx)
}

// TestPlateauStack_OpenCloseCancel exercises the parity-guarded
// open/close/cancel state machine.
func TestPlateauStack_OpenCloseCancel(t *testing.T) {
	p := newPlateauStack(8)
	assert.False(t, p.isOpen())

	p.closePlateau(3) // no-op: nothing open
	assert.Empty(t, p.idx)

	p.openPlateau(3)
	assert.True(t, p.isOpen())
	p.openPlateau(4) // no-op: already open
	assert.Equal(t, []int{3}, p.idx)

	p.closePlateau(7)
	assert.False(t, p.isOpen())
	assert.Equal(t, 5, p.lastClosedCenter())

	p.openPlateau(9)
	p.cancelOpenPlateau()
	assert.False(t, p.isOpen())
	assert.Equal(t, []int{3, 7}, p.idx)
}

// TestDispatch_AscendingPeak drives the dispatch table directly for the
// prevDiff=up, currDiff=down cell.
func TestDispatch_AscendingPeak(t *testing.T) {
	x := []float64{1, 2, 1}
	s := newScanner(x, Unbounded, defaultConfig())
	s.advanceCursors(0)
	dispatch(s, 0, tokenUndefined, tokenUp, false, s.prevPos)
	s.prevDiff = tokenUp
	s.advanceCursors(1)
	leftSnapshot := s.prevPos
	dispatch(s, 1, tokenUp, tokenDown, false, leftSnapshot)

	assert.Equal(t, 3, s.out[1])
}

package peakwindow

// indexStack is a strictly increasing, append-only sequence of sample
// indices. It backs PrevStack and NextStack: push is a no-op unless the
// new index is strictly greater than the current top, which is what
// keeps the amortised lookahead bound correct (see resolve.go).
type indexStack struct {
	idx []int
}

// newIndexStack pre-sizes the backing slice to n entries, its worst-case
// occupancy, so push never reallocates mid-scan.
func newIndexStack(n int) indexStack {
	return indexStack{idx: make([]int, 0, n)}
}

// push appends i iff the stack is empty or i is strictly greater than
// the current top; otherwise it is a silent no-op.
func (s *indexStack) push(i int) {
	if len(s.idx) == 0 || i > s.idx[len(s.idx)-1] {
		s.idx = append(s.idx, i)
	}
}

// len reports the number of entries currently held.
func (s *indexStack) len() int {
	return len(s.idx)
}

// at returns the sample index stored at stack position p.
func (s *indexStack) at(p int) int {
	return s.idx[p]
}

// plateauStack stores (start, end) pairs at even/odd positions. A
// dangling start with no matching end means the plateau is still open;
// cancelling it drops the dangling start without ever recording an end.
type plateauStack struct {
	idx []int
}

// newPlateauStack pre-sizes the backing slice to 2N entries, its
// worst-case occupancy (every sample both opening and closing a plateau).
func newPlateauStack(n int) plateauStack {
	return plateauStack{idx: make([]int, 0, 2*n)}
}

// isOpen reports whether a plateau is currently open (odd length).
func (s *plateauStack) isOpen() bool {
	return len(s.idx)%2 == 1
}

// openPlateau pushes i as a new plateau start iff no plateau is
// currently open and i is strictly past the last recorded entry.
func (s *plateauStack) openPlateau(i int) {
	if !s.isOpen() && (len(s.idx) == 0 || i > s.idx[len(s.idx)-1]) {
		s.idx = append(s.idx, i)
	}
}

// closePlateau pushes i as the end of the currently open plateau, iff
// one is open and i is strictly past its start.
func (s *plateauStack) closePlateau(i int) {
	if s.isOpen() && i > s.idx[len(s.idx)-1] {
		s.idx = append(s.idx, i)
	}
}

// cancelOpenPlateau drops a dangling start, if one exists.
func (s *plateauStack) cancelOpenPlateau() {
	if s.isOpen() {
		s.idx = s.idx[:len(s.idx)-1]
	}
}

// lastClosedCenter returns floor((s+e)/2) for the most recently closed
// pair. Callers must only invoke this immediately after closePlateau
// succeeds.
func (s *plateauStack) lastClosedCenter() int {
	n := len(s.idx)
	start, end := s.idx[n-2], s.idx[n-1]

	return (start + end) / 2
}

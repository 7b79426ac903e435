package peakwindow

import "math"

// scanner holds the mutable state of a single Detect call: the sample
// sequence, the three landmark stacks, the skip map, and the output
// buffer being filled in place. It mirrors the walker pattern used for
// graph traversal elsewhere in this module's lineage: a struct carrying
// cursor state plus small named step methods instead of one long loop.
type scanner struct {
	x   []float64
	n   int
	cap int // effective cap, already clamped to <= n
	cfg config

	out  []int
	prev indexStack
	next indexStack
	plat plateauStack
	skip []bool

	prevPos int // stack position: largest PrevStack entry <= current i
	nextPos int // stack position: largest NextStack entry <= current i

	prevDiff slopeToken
}

// newScanner allocates the scan's four buffers once, up front; nothing
// allocates inside run's main loop.
func newScanner(x []float64, capEff int, cfg config) *scanner {
	n := len(x)

	return &scanner{
		x:        x,
		n:        n,
		cap:      capEff,
		cfg:      cfg,
		out:      make([]int, n),
		prev:     newIndexStack(n),
		next:     newIndexStack(n),
		plat:     newPlateauStack(n),
		skip:     make([]bool, n),
		prevPos:  -1,
		nextPos:  -1,
		prevDiff: tokenUndefined,
	}
}

// advanceCursors advances prevPos and nextPos so they point at the
// largest stack entries still <= i. Cursors never move backward.
func (s *scanner) advanceCursors(i int) {
	for s.prevPos+1 < s.prev.len() && s.prev.at(s.prevPos+1) <= i {
		s.prevPos++
	}
	for s.nextPos+1 < s.next.len() && s.next.at(s.nextPos+1) <= i {
		s.nextPos++
	}
}

// pushPrev pushes i to PrevStack and fires the instrumentation hook when
// the push is accepted.
func (s *scanner) pushPrev(i int) {
	before := s.prev.len()
	s.prev.push(i)
	if s.prev.len() > before {
		s.cfg.onPushPrev(i)
	}
}

// openPlateau opens a plateau at i and fires the instrumentation hook.
func (s *scanner) openPlateau(i int) {
	s.plat.openPlateau(i)
	s.cfg.onOpenPlateau(i)
}

// closePlateau closes the open plateau at i, if any, and fires the hook.
// It reports whether a plateau was actually closed by this call.
func (s *scanner) closePlateau(i int) bool {
	wasOpen := s.plat.isOpen()
	s.plat.closePlateau(i)
	if wasOpen && !s.plat.isOpen() {
		n := len(s.plat.idx)
		s.cfg.onClosePlateau(s.plat.idx[n-2], s.plat.idx[n-1])

		return true
	}

	return false
}

// emitPeak resolves the window for a peak centred at peakCenter,
// discovered while the main cursor is at i, records it in the output,
// and fires the instrumentation hook.
func (s *scanner) emitPeak(peakCenter, i, leftSnapshot int) {
	winsize := s.resolveWindow(peakCenter, i, leftSnapshot)
	s.out[peakCenter] = winsize
	s.cfg.onEmitPeak(peakCenter, winsize)
}

// run executes the single left-to-right pass over the samples.
func (s *scanner) run() []int {
	n := s.n
	for i := 0; i < n; i++ {
		if s.skip[i] {
			s.out[i] = 0
			if i < n-1 {
				s.prevDiff = classify(s.x[i], s.x[i+1])
			}

			continue
		}

		s.advanceCursors(i)
		inPlateau := s.plat.isOpen()

		if i == n-1 {
			s.out[i] = 0

			break
		}

		curr := classify(s.x[i], s.x[i+1])
		s.cfg.onSlopeToken(i, int(curr))
		leftSnapshot := s.prevPos

		dispatch(s, i, s.prevDiff, curr, inPlateau, leftSnapshot)
		s.prevDiff = curr
	}

	return s.out
}

// dispatchAction is the shape of every dispatch table cell: given the
// scanner, the current index, whether a plateau is open (0/1), and the
// pre-dispatch PrevStack cursor snapshot, mutate scanner state.
type dispatchAction func(s *scanner, i int, inPlateau, leftSnapshot int)

// dispatchTable is indexed [prevDiff][currDiff] after remapping both
// slopeTokens to small non-negative offsets via rowIndex/colIndex.
// Rows run tokenUndefined, tokenDown, tokenFlat, tokenUp; columns run
// tokenDown, tokenFlat, tokenUp. A flat table reads better than the
// equivalent nested switch over twelve (prevDiff, currDiff) cases.
var dispatchTable = [4][3]dispatchAction{
	// prevDiff == tokenUndefined (-2): always push, never a peak.
	{actionPush, actionPush, actionPush},
	// prevDiff == tokenDown (-1): always push, never a peak (up here is a local minimum).
	{actionPush, actionPush, actionPush},
	// prevDiff == tokenFlat (0): depends on in_plateau / cancellation.
	{actionCloseOrPush, actionNone, actionCancelPlateau},
	// prevDiff == tokenUp (+1): ascending peak, or opening a plateau.
	{actionAscendingPeak, actionOpenPlateau, actionNone},
}

func rowIndex(t slopeToken) int { return int(t) + 2 } // -2..1 -> 0..3
func colIndex(t slopeToken) int { return int(t) + 1 } // -1..1 -> 0..2

// dispatch looks up and runs the action for (prevDiff, currDiff).
func dispatch(s *scanner, i int, prevDiff, currDiff slopeToken, inPlateau bool, leftSnapshot int) {
	ip := 0
	if inPlateau {
		ip = 1
	}
	action := dispatchTable[rowIndex(prevDiff)][colIndex(currDiff)]
	action(s, i, ip, leftSnapshot)
}

// actionPush is the row shared by tokenUndefined and tokenDown: push i,
// output stays zero.
func actionPush(s *scanner, i int, _ int, _ int) {
	s.pushPrev(i)
	s.out[i] = 0
}

// actionNone leaves the output at zero and touches no stack.
func actionNone(*scanner, int, int, int) {}

// actionCloseOrPush handles prevDiff==flat, currDiff==down: push i, and
// if a plateau ends at i (closed here, or already closed at i by an
// earlier peak's lookahead), emit its centre as a peak. A plateau that
// holds a NaN sample emits no peak.
func actionCloseOrPush(s *scanner, i int, inPlateau int, leftSnapshot int) {
	s.pushPrev(i)
	closed := inPlateau == 1 && s.closePlateau(i)
	if !closed && !s.plat.isOpen() {
		n := len(s.plat.idx)
		closed = n >= 2 && s.plat.idx[n-1] == i
	}
	if closed {
		n := len(s.plat.idx)
		for k := s.plat.idx[n-2]; k <= s.plat.idx[n-1]; k++ {
			if math.IsNaN(s.x[k]) {
				closed = false

				break
			}
		}
	}
	if closed {
		center := s.plat.lastClosedCenter()
		s.emitPeak(center, i, leftSnapshot)

		return
	}
	s.out[i] = 0
}

// actionCancelPlateau handles prevDiff==flat, currDiff==up: ascending
// out of a flat run cancels any candidate plateau.
func actionCancelPlateau(s *scanner, i int, _ int, _ int) {
	s.plat.cancelOpenPlateau()
	s.out[i] = 0
}

// actionAscendingPeak handles prevDiff==up, currDiff==down: i itself is
// a peak.
func actionAscendingPeak(s *scanner, i int, _ int, leftSnapshot int) {
	s.pushPrev(i)
	s.emitPeak(i, i, leftSnapshot)
}

// actionOpenPlateau handles prevDiff==up, currDiff==flat: entering a flat run.
func actionOpenPlateau(s *scanner, i int, _ int, _ int) {
	s.openPlateau(i)
	s.out[i] = 0
}

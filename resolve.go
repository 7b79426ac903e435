package peakwindow

// resolveWindow computes the symmetric half-window size for a peak
// centred at peakCenter, discovered while the main cursor sits at i
// (peakCenter == i for an ascending peak; peakCenter < i for a plateau
// centre closed at i).
func (s *scanner) resolveWindow(peakCenter, i, leftSnapshot int) int {
	budget := s.cap - 1
	if budget < 0 {
		budget = 0
	}

	left := s.leftHalf(peakCenter, leftSnapshot, budget)
	remaining := budget - left
	right := s.rightHalf(peakCenter, i, remaining)

	winsize := 1 + left + right
	if winsize > s.cap {
		winsize = s.cap
	}

	return winsize
}

// leftHalf walks PrevStack backwards from startPos toward position 0,
// looking for the nearest strictly greater sample to the left of
// peakCenter, clamped by budget.
func (s *scanner) leftHalf(peakCenter, startPos, budget int) int {
	for p := startPos; p >= 0; p-- {
		idx := s.prev.at(p)
		dist := peakCenter - idx - 1
		if dist > budget {
			return budget
		}
		// idx >= peakCenter means this entry is not actually to the
		// left of the peak (self-reference, or a stale push from an
		// earlier peak's lookahead landing inside this plateau): it
		// can never be a valid left-bound candidate.
		if idx < peakCenter && strictlyGreater(s.x[idx], s.x[peakCenter]) {
			return dist
		}
	}

	if peakCenter > budget {
		return budget
	}

	return peakCenter
}

// rightHalf first consults NextStack (work cached by earlier peaks'
// lookaheads), then, if unresolved, extends the live forward lookahead,
// populating PrevStack, NextStack, SkipMap and the plateau stack as it
// goes so later peaks can reuse the work.
func (s *scanner) rightHalf(peakCenter, i, remaining int) int {
	lastConsulted := i
	for p := s.nextPos; p >= 0 && p < s.next.len(); p++ {
		q := s.next.at(p)
		lastConsulted = q
		dist := q - peakCenter - 1
		if dist >= remaining {
			return remaining
		}
		// q <= peakCenter means this entry is stale (behind the peak
		// being resolved now, left over from an earlier peak's
		// lookahead): it can never be a valid right-bound candidate.
		if q > peakCenter && strictlyGreater(s.x[q], s.x[peakCenter]) {
			return dist
		}
	}
	// Every NextStack entry may lie at or behind i; the live lookahead
	// always resumes past the main cursor.
	if lastConsulted < i {
		lastConsulted = i
	}

	return s.extendLookahead(peakCenter, lastConsulted, remaining)
}

// extendLookahead steps the forward cursor one index at a time past
// from, classifying each new index exactly once and recording it in
// PrevStack/NextStack/SkipMap/the plateau stack via lookaheadBookkeep,
// so later peaks reuse this work instead of rescanning it.
func (s *scanner) extendLookahead(peakCenter, from, remaining int) int {
	n := s.n
	for j := from + 1; ; j++ {
		dist := j - peakCenter - 1
		if dist > remaining {
			return remaining
		}
		if strictlyGreater(s.x[j], s.x[peakCenter]) {
			return dist
		}
		if j == n-1 {
			return n - peakCenter - 1
		}

		peekPrev := classify(s.x[j-1], s.x[j])
		peekCurr := classify(s.x[j], s.x[j+1])
		s.lookaheadBookkeep(j, peekPrev, peekCurr)
	}
}

// lookaheadBookkeep records the result of visiting index j during
// lookahead: j is always pushed to NextStack (the only way a later
// peak can ever reuse this work without rescanning it), plus whatever
// PrevStack/plateau/skip action its (peekPrev, peekCurr) pair dictates.
func (s *scanner) lookaheadBookkeep(j int, peekPrev, peekCurr slopeToken) {
	s.next.push(j)

	switch peekPrev {
	case tokenDown:
		s.pushPrev(j)
		s.skip[j] = true
	case tokenFlat:
		switch peekCurr {
		case tokenDown:
			s.pushPrev(j)
			s.closePlateau(j)
			s.skip[j] = false
		case tokenUp:
			s.plat.cancelOpenPlateau()
			s.skip[j] = true
		default: // tokenFlat
			s.skip[j] = true
		}
	case tokenUp:
		switch peekCurr {
		case tokenDown:
			s.pushPrev(j)
			s.skip[j] = false
		case tokenFlat:
			s.openPlateau(j)
			s.skip[j] = true
		default: // tokenUp
			s.skip[j] = true
		}
	}
}

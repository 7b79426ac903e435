package peakwindow

// Detect runs the Peak-Window Scanner over samples and returns a slice
// of the same length: zero at every non-peak index, and the resolved
// window size in [1, capWinSize] at every peak (including plateau
// centres). capWinSize must be non-negative; pass Unbounded for no cap.
//
// samples is read-only and never mutated. Detect runs in O(N) amortised
// time and O(N) space, allocating its scan buffers once up front and
// nothing further inside the main loop.
func Detect(samples []float64, capWinSize int, opts ...Option) ([]int, error) {
	if capWinSize < 0 {
		return nil, ErrNegativeCap
	}

	n := len(samples)
	if n == 0 {
		return []int{}, nil
	}

	capEff := capWinSize
	if capEff > n {
		capEff = n
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := newScanner(samples, capEff, cfg)

	return s.run(), nil
}

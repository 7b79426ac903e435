// Package peakwindow defines configuration options and sentinel errors
// for the peak-window scanner.
package peakwindow

import (
	"errors"
	"math"
)

// Unbounded, passed as capWinSize, disables clamping entirely.
const Unbounded = math.MaxInt

// ErrNegativeCap is returned when capWinSize is negative. Detect fails
// with this error before allocating any scan buffers.
var ErrNegativeCap = errors.New("peakwindow: capWinSize must be non-negative")

// Option configures scanner instrumentation via functional arguments.
type Option func(*config)

// config holds the no-op-default hooks the scanner invokes at its five
// defined events: a slope token was computed, an index was pushed to
// PrevStack, a plateau was opened, a plateau was closed, or a peak was
// emitted with its resolved window size.
type config struct {
	onSlopeToken   func(i int, token int)
	onPushPrev     func(i int)
	onOpenPlateau  func(i int)
	onClosePlateau func(start, end int)
	onEmitPeak     func(i, winsize int)
}

// defaultConfig returns a config with every hook set to a no-op.
func defaultConfig() config {
	return config{
		onSlopeToken:   func(int, int) {},
		onPushPrev:     func(int) {},
		onOpenPlateau:  func(int) {},
		onClosePlateau: func(int, int) {},
		onEmitPeak:     func(int, int) {},
	}
}

// WithOnSlopeToken registers a callback invoked each time the main scan
// classifies the slope at a non-skipped index i (token is -1, 0, or +1).
// Classifications made during lookahead, or while passing a skipped
// index, do not fire it.
func WithOnSlopeToken(fn func(i int, token int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onSlopeToken = fn
		}
	}
}

// WithOnPushPrev registers a callback invoked whenever index i is
// pushed onto PrevStack, from the main scan or from lookahead.
func WithOnPushPrev(fn func(i int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onPushPrev = fn
		}
	}
}

// WithOnOpenPlateau registers a callback invoked when a plateau opens at i.
func WithOnOpenPlateau(fn func(i int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onOpenPlateau = fn
		}
	}
}

// WithOnClosePlateau registers a callback invoked when a plateau [start,end] closes.
func WithOnClosePlateau(fn func(start, end int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onClosePlateau = fn
		}
	}
}

// WithOnEmitPeak registers a callback invoked when a peak at index i is
// emitted with the given window size.
func WithOnEmitPeak(fn func(i, winsize int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onEmitPeak = fn
		}
	}
}

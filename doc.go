// Package peakwindow finds local maxima in a one-dimensional numeric
// signal in a single left-to-right pass, each annotated with a window
// size describing how far it dominates its neighbours.
//
// 🚀 What is peakwindow?
//
//	A small, zero-dependency library built around one call:
//
//	  • Detect(samples, capWinSize, opts...) — scan once, emit peaks
//	  • Symmetric half-windows, capped (or not) by capWinSize
//	  • Plateaus (flat-topped peaks) centred and sized correctly
//
// ✨ Why choose peakwindow?
//
//   - Single-pass    — O(N) amortised time, O(N) space, no recursion
//   - Deterministic  — identical input always yields identical output
//   - Extensible     — attach WithOnEmitPeak/WithOnOpenPlateau hooks for custom logic
//   - Pure Go        — no cgo, no hidden dependencies in the core package
//
// Under the hood, the scan keeps three small landmark stacks (PrevStack,
// NextStack, a plateau stack) plus a skip map for amortised forward
// lookahead, and dispatches each (previous-slope, current-slope) pair
// through a flat action table instead of nested conditionals.
//
// Quick ASCII example:
//
//	x = [0, 1, 2, 1, 0]
//	          ^
//	        peak at index 2, winsize 5 (both halves run to the edges)
//
// See cmd/peakwindow for a small CLI wrapper and testsignal for
// synthetic benchmark/example data.
//
//	go get github.com/katalvlaran/peakwindow
package peakwindow

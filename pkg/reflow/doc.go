// Package reflow rewraps a single paragraph of prose to a maximum line
// width.
//
// Text is split into words on runs of whitespace, then packed into lines
// by one of two strategies:
//
//   - Greedy   — fill each line with as many words as fit, left to right.
//     This yields the fewest lines possible.
//   - Balanced — keep the greedy line count but choose the breakpoints that
//     minimise the total squared shortfall (MaxLength - line length), so
//     the right edge is as even as possible.
//
// Unless Options.LastLine is set, the final line of a paragraph is always
// the one the greedy pass produced and only the lines before it are
// balanced.
//
// A word longer than MaxLength is never split; it sits on a line of its
// own in both modes.
//
// Usage:
//
//	opts := reflow.DefaultOptions()
//	opts.MaxLength = 40
//	opts.ReduceJaggedness = true
//	out := reflow.Reformat(opts, text)
//
// Everything in this package is pure and safe for concurrent use.
package reflow

// Package viz provides the terminal presentation for refsheet.
//
//   - [Browser]: interactive easing browser built on Bubble Tea
//   - [Styles]: lipgloss styles derived from a [Theme]
//   - [Sparkline], [RenderList]: compact listings for CLI output
//
// # Key Bindings
//
//	j/k, up/down - Select curve
//	h/l, left/right - Fewer/more frames
//	b - Toggle Braille plot
//	t - Cycle color themes
//	q - Quit
package viz

// Package okpicker provides an immediate-mode color picker widget built on
// the Oklch perceptual color space.
//
// # Overview
//
// okpicker edits a color expressed as lightness, chroma, hue and alpha
// (Oklch) through six sliders (alpha, hue, chroma, lightness and a
// combined chroma/lightness area) and hands the result back as a
// gamma-encoded, alpha-premultiplied 8-bit sRGB value. Because that 8-bit
// value is lossy (hue disappears entirely at full white or black), a small
// round-trip cache remembers the full-precision color last committed for
// each quantized value and restores it on the next edit.
//
// # Quick Start
//
//	import "github.com/fu5ha/okpicker"
//
//	picker := okpicker.NewPicker(okpicker.RectXYWH(16, 16, 48, 24))
//	cache := okpicker.NewRoundTripCache(0)
//
//	// Once per UI pass:
//	host := &okpicker.Host{Painter: painter, Input: input, Clipboard: clip, Cache: cache}
//	if picker.EditDisplay(host, &color) {
//	    // color changed this pass
//	}
//
// # Host Integration
//
// The picker does not own a window, event loop or rasterizer. It consumes
// the host GUI framework through the narrow Painter, Input and Clipboard
// interfaces in the Host bundle, and draws gradients as colored triangle
// meshes whose vertex colors the host interpolates. SoftwarePainter is a
// CPU reference implementation of Painter for tests and headless use.
//
// # Coordinate System
//
// Positions are host pixels: origin top-left, x right, y down. Vertical
// sliders invert this mapping, so the top of a slider region is the range
// maximum and values grow upward the way users expect.
package okpicker

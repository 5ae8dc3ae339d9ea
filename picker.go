package okpicker

import (
	"fmt"
	"math"
)

// pickerState is the popup state. The trigger button is the only way in;
// escape, clicking elsewhere, or the button again are the ways out.
type pickerState uint8

const (
	stateClosed pickerState = iota
	stateOpen
)

// popupFill is the popup background.
var popupFill = Gray(24)

// Picker is an interactive Oklch color editor: a swatch button that opens
// a popup with alpha, hue, chroma and lightness sliders plus a combined
// chroma/lightness area.
//
// The picker is immediate-mode: call EditDisplay or EditOklch once per UI
// pass and it renders itself, applies this pass's input, and reports
// whether the color changed. It is not safe for concurrent use; the whole
// pass runs on the host's UI thread.
type Picker struct {
	state pickerState
	// button is the trigger region, assigned by the host's layout.
	button Rect
	// popup is the transient open-region geometry. It is only valid while
	// the state is open and is discarded on close so a stale region never
	// receives interpreted input on a later pass.
	popup Rect
	// work is the working perceptual color for the current pass.
	work Oklch

	sliderWidth float32
	rowHeight   float32
}

// PickerOption configures a Picker during creation.
type PickerOption func(*Picker)

// WithSliderWidth sets the width in pixels of the popup sliders.
func WithSliderWidth(w float32) PickerOption {
	return func(p *Picker) { p.sliderWidth = w }
}

// WithRowHeight sets the base interaction row height; 1-D sliders are two
// rows tall.
func WithRowHeight(h float32) PickerOption {
	return func(p *Picker) { p.rowHeight = h }
}

// NewPicker creates a picker whose trigger button occupies the given
// region of the host layout.
func NewPicker(button Rect, opts ...PickerOption) *Picker {
	p := &Picker{
		button:      button,
		sliderWidth: 256,
		rowHeight:   20,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsOpen reports whether the popup is currently open.
func (p *Picker) IsOpen() bool {
	return p.state == stateOpen
}

// SetButton moves the trigger region, for hosts that re-layout between
// passes.
func (p *Picker) SetButton(r Rect) {
	p.button = r
}

// Regions describes the regions the picker draws and listens on during a
// pass. They are a pure function of the button rect and the picker's
// options, so embedding frameworks can hit-test or drive the picker
// programmatically.
type Regions struct {
	Button Rect // trigger button
	Popup  Rect // whole popup frame
	Copy   Rect // copy-to-clipboard action
	Alpha  Rect // alpha slider
	Swatch Rect // current-color swatch
	Hue    Rect // hue slider
	Chroma Rect // chroma slider
	Light  Rect // lightness slider
	Area   Rect // combined chroma (x) / lightness (y) slider
}

// Regions returns the picker's geometry as if the popup were open.
func (p *Picker) Regions() Regions {
	const pad = 8
	const gap = 8

	w := p.sliderWidth
	x := p.button.Right() + 4
	y := p.button.Bottom() + 4

	cursor := y + pad
	row := func(height float32) Rect {
		r := RectXYWH(x+pad, cursor, w, height)
		cursor += height + gap
		return r
	}

	reg := Regions{Button: p.button}
	reg.Copy = RectXYWH(x+pad, cursor, p.rowHeight, p.rowHeight)
	cursor += p.rowHeight + gap
	reg.Alpha = row(2 * p.rowHeight)
	reg.Swatch = row(2 * p.rowHeight)
	reg.Hue = row(2 * p.rowHeight)
	reg.Chroma = row(2 * p.rowHeight)
	reg.Light = row(2 * p.rowHeight)
	reg.Area = row(w)
	reg.Popup = RectXYWH(x, y, w+2*pad, cursor-gap+pad-y)
	return reg
}

// EditDisplay renders the picker for the display color at *display and
// applies this pass's interactions. The working perceptual color is seeded
// from the round-trip cache so that hue and chroma erased by quantization
// come back; a cache miss falls back to direct conversion. On return
// *display holds the latest committed value and the new cache entry is
// written. The result reports whether *display differs from the value
// passed in.
func (p *Picker) EditDisplay(h *Host, display *DisplayRGBA) bool {
	orig := *display

	work, hit := h.Cache.Get(orig)
	if !hit {
		work = orig.Oklch()
	}
	Logger().Debug("seed working color",
		"cacheHit", hit,
		"key", fmt.Sprintf("%02x%02x%02x%02x", orig.R, orig.G, orig.B, orig.A))

	p.work = work
	p.editColor(h)

	*display = p.work.Display()
	h.Cache.Set(*display, p.work)
	return *display != orig
}

// EditOklch is like EditDisplay but edits a caller-owned perceptual color
// in place. The caller keeps the full-precision components across passes,
// so no cache seeding is involved; the result reports whether any
// component changed this pass.
func (p *Picker) EditOklch(h *Host, color *Oklch) bool {
	orig := *color
	p.work = *color
	p.editColor(h)
	*color = p.work
	return *color != orig
}

// editColor runs one pass: trigger button, state transitions, and the
// popup UI while open.
func (p *Picker) editColor(h *Host) {
	display := p.work.Display()

	backgroundCheckers(h.Painter, p.button)
	h.Painter.FillRect(p.button.LeftHalf(), display)
	h.Painter.FillRect(p.button.RightHalf(), display.Opaque())
	h.Painter.StrokeRect(p.button, 2, outlineColor)

	clicked := h.Input.Activated(p.button)
	if clicked {
		if p.state == stateOpen {
			p.close()
		} else {
			p.open()
		}
	}
	if p.state != stateOpen {
		return
	}

	reg := p.Regions()
	p.popup = reg.Popup

	h.Painter.FillRect(reg.Popup, popupFill)
	h.Painter.StrokeRect(reg.Popup, 1, outlineColor)
	p.popupUI(h, reg)

	if !clicked && (h.Input.EscapePressed() || h.Input.ActivatedOutside(p.popup)) {
		p.close()
	}
}

// popupUI renders the slider rows and applies their interactions to the
// working color. The 1-D slider color functions hold every other
// component fixed at the pass-start working color with alpha forced
// opaque, matching what the gradient should preview.
func (p *Picker) popupUI(h *Host, reg Regions) {
	display := p.work.Display()

	// The host renders the value text next to the copy button; the picker
	// owns only the action region and the clipboard write.
	h.Painter.StrokeRect(reg.Copy, 1, outlineColor)
	if h.Input.Activated(reg.Copy) && h.Clipboard != nil {
		h.Clipboard.SetText(fmt.Sprintf("%d, %d, %d, %d",
			display.R, display.G, display.B, display.A))
	}

	opaque := p.work.Opaque()

	slider1D(h, reg.Alpha, &p.work.A, Range{0, 1}, func(a float32) DisplayRGBA {
		c := opaque
		c.A = a
		return c.Display()
	})

	showColor(h.Painter, reg.Swatch, display)

	slider1D(h, reg.Hue, &p.work.H, Range{-math.Pi, math.Pi}, func(hue float32) DisplayRGBA {
		c := opaque
		c.H = hue
		return c.Display()
	})

	slider1D(h, reg.Chroma, &p.work.C, Range{0, MaxChroma}, func(ch float32) DisplayRGBA {
		c := opaque
		c.C = ch
		return c.Display()
	})

	slider1D(h, reg.Light, &p.work.L, Range{0, 1}, func(l float32) DisplayRGBA {
		c := opaque
		c.L = l
		return c.Display()
	})

	slider2D(h, reg.Area, &p.work.C, Range{0, MaxChroma}, &p.work.L, Range{0, 1},
		func(ch, l float32) DisplayRGBA {
			c := opaque
			c.C = ch
			c.L = l
			return c.Display()
		})
}

func (p *Picker) open() {
	p.state = stateOpen
	Logger().Debug("picker opened")
}

func (p *Picker) close() {
	p.state = stateClosed
	p.popup = Rect{}
	Logger().Debug("picker closed")
}

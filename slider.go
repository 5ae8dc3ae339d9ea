package okpicker

// outlineColor strokes slider and swatch borders.
var outlineColor = Gray(96)

// slider1D renders a horizontal gradient slider over rect and applies any
// pointer interaction to *value, clamped to rng. The color function at is
// used both for the gradient mesh and the indicator fill.
func slider1D(h *Host, rect Rect, value *float32, rng Range, at func(float32) DisplayRGBA) {
	if pos, ok := h.Input.PointerPos(rect); ok {
		*value = RemapClamp(pos.X, Range{rect.Left(), rect.Right()}, rng)
	}

	backgroundCheckers(h.Painter, rect) // visible when at() is translucent

	h.Painter.Mesh(GradientStrip(rect, rng, at))
	h.Painter.StrokeRect(rect, 1, outlineColor)

	// Indicator: a triangle rising from the bottom edge at the current value.
	x := Lerp(Range{rect.Left(), rect.Right()}, RemapClamp(*value, rng, Range{0, 1}))
	r := rect.Height() / 4
	picked := at(*value)
	h.Painter.FillPolygon([]Pos{
		{x - r, rect.Bottom()},
		{x + r, rect.Bottom()},
		{x, rect.Center().Y},
	}, picked, 1, contrastColor(picked))
}

// slider2D renders a two-axis gradient area over rect and applies any
// pointer interaction to *xValue and *yValue. The vertical axis is
// inverted: the top edge of rect is yRange.Max, the bottom edge yRange.Min.
func slider2D(h *Host, rect Rect, xValue *float32, xRange Range, yValue *float32, yRange Range, at func(x, y float32) DisplayRGBA) {
	if pos, ok := h.Input.PointerPos(rect); ok {
		*xValue = RemapClamp(pos.X, Range{rect.Left(), rect.Right()}, xRange)
		*yValue = RemapClamp(pos.Y, Range{rect.Bottom(), rect.Top()}, yRange)
	}

	h.Painter.Mesh(GradientArea(rect, xRange, yRange, at))
	h.Painter.StrokeRect(rect, 1, outlineColor)

	// Indicator: a circle at the current value pair.
	x := Lerp(Range{rect.Left(), rect.Right()}, RemapClamp(*xValue, xRange, Range{0, 1}))
	y := Lerp(Range{rect.Bottom(), rect.Top()}, RemapClamp(*yValue, yRange, Range{0, 1}))
	picked := at(*xValue, *yValue)
	h.Painter.FillCircle(Pos{x, y}, rect.Width()/12, picked, 1, contrastColor(picked))
}

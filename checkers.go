package okpicker

// backgroundCheckers fills r with the alternating gray checkerboard drawn
// beneath translucent colors so the alpha level is visible.
func backgroundCheckers(p Painter, r Rect) {
	r = r.Shrink(0.5) // keep the checkers from peeking past the outline

	top := Gray(128)
	bottom := Gray(32)
	size := r.Height() / 2
	if size <= 0 || r.Width() <= 0 {
		return
	}
	n := int(r.Width()/size + 0.5)

	m := &Mesh{}
	for i := 0; i < n; i++ {
		x := Lerp(Range{r.Left(), r.Right()}, float32(i)/float32(n))
		m.AddRect(RectXYWH(x, r.Top(), size, size), top)
		m.AddRect(RectXYWH(x, r.Top()+size, size, size), bottom)
		top, bottom = bottom, top
	}
	p.Mesh(m)
}

// showColor draws a color swatch over the checkerboard: the left half
// shows the color as-is, the right half its fully opaque version, so the
// user sees the hue even at low alpha.
func showColor(p Painter, r Rect, c DisplayRGBA) {
	backgroundCheckers(p, r)
	p.FillRect(r.LeftHalf(), c)
	p.FillRect(r.RightHalf(), c.Opaque())
}

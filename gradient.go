package okpicker

// GradientSamples is the number of quads per dimension in slider meshes.
// It must be a multiple of 6 so the hue extrema, spaced every 60°, land
// exactly on a sample point; otherwise the hue strip shows flat facets at
// the primaries. 36 also gives the 2-D area enough density to look smooth.
const GradientSamples = 6 * 6

// GradientStrip tessellates a horizontal 1-D gradient across rect.
// The color function at is evaluated at GradientSamples+1 values obtained
// by interpolating rng from left (Min) to right (Max); each sample becomes
// a top/bottom vertex pair and adjacent pairs are joined by two triangles.
func GradientStrip(rect Rect, rng Range, at func(float32) DisplayRGBA) *Mesh {
	const n = uint32(GradientSamples)
	m := &Mesh{
		Vertices: make([]Vertex, 0, 2*(n+1)),
		Indices:  make([]uint32, 0, 6*n),
	}
	for i := uint32(0); i <= n; i++ {
		t := float32(i) / float32(n)
		c := at(Lerp(rng, t))
		x := Lerp(Range{rect.Left(), rect.Right()}, t)
		m.ColoredVertex(Pos{x, rect.Top()}, c)
		m.ColoredVertex(Pos{x, rect.Bottom()}, c)
		if i < n {
			m.AddTriangle(2*i, 2*i+1, 2*i+2)
			m.AddTriangle(2*i+1, 2*i+3, 2*i+2)
		}
	}
	return m
}

// GradientArea tessellates a 2-D gradient across rect. The color function
// is evaluated exactly once per grid vertex, (GradientSamples+1)² times in
// total. Horizontal position maps onto xRange left-to-right; vertical
// position maps onto yRange bottom-to-top, so the maximum value sits at
// the top of the region even though screen y grows downward.
func GradientArea(rect Rect, xRange, yRange Range, at func(x, y float32) DisplayRGBA) *Mesh {
	const n = uint32(GradientSamples)
	m := &Mesh{
		Vertices: make([]Vertex, 0, (n+1)*(n+1)),
		Indices:  make([]uint32, 0, 6*n*n),
	}
	for yi := uint32(0); yi <= n; yi++ {
		for xi := uint32(0); xi <= n; xi++ {
			xt := float32(xi) / float32(n)
			yt := float32(yi) / float32(n)
			c := at(Lerp(xRange, xt), Lerp(yRange, yt))
			x := Lerp(Range{rect.Left(), rect.Right()}, xt)
			y := Lerp(Range{rect.Bottom(), rect.Top()}, yt)
			m.ColoredVertex(Pos{x, y}, c)

			if xi < n && yi < n {
				tl := yi*(n+1) + xi
				m.AddTriangle(tl, tl+1, tl+n+1)
				m.AddTriangle(tl+1, tl+n+2, tl+n+1)
			}
		}
	}
	return m
}

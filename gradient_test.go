package okpicker

import "testing"

// triangleArea returns twice the signed area of triangle t in mesh m.
func triangleArea(m *Mesh, t int) float32 {
	a := m.Vertices[m.Indices[3*t]].Pos
	b := m.Vertices[m.Indices[3*t+1]].Pos
	c := m.Vertices[m.Indices[3*t+2]].Pos
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func TestGradientSamplesMultipleOfSix(t *testing.T) {
	// Hue extrema sit every 60°; the sample grid must land on them.
	if GradientSamples%6 != 0 || GradientSamples <= 0 {
		t.Fatalf("GradientSamples = %d, want a positive multiple of 6", GradientSamples)
	}
}

func TestGradientStrip_Topology(t *testing.T) {
	const n = GradientSamples
	rect := RectXYWH(10, 20, 200, 40)

	var evaluated []float32
	m := GradientStrip(rect, Range{-2, 2}, func(v float32) DisplayRGBA {
		evaluated = append(evaluated, v)
		return Gray(128)
	})

	if got := len(m.Vertices); got != 2*(n+1) {
		t.Errorf("vertices = %d, want %d", got, 2*(n+1))
	}
	if got := m.TriangleCount(); got != 2*n {
		t.Errorf("triangles = %d, want %d", got, 2*n)
	}
	if len(evaluated) != n+1 {
		t.Fatalf("color function evaluated %d times, want %d", len(evaluated), n+1)
	}
	if evaluated[0] != -2 || evaluated[n] != 2 {
		t.Errorf("endpoint samples = %v, %v, want range bounds", evaluated[0], evaluated[n])
	}

	for i := 0; i < m.TriangleCount(); i++ {
		if triangleArea(m, i) == 0 {
			t.Errorf("triangle %d is degenerate", i)
		}
	}

	// Column extremes land exactly on the region edges.
	if m.Vertices[0].Pos.X != rect.Left() || m.Vertices[len(m.Vertices)-1].Pos.X != rect.Right() {
		t.Errorf("columns span %v..%v, want %v..%v",
			m.Vertices[0].Pos.X, m.Vertices[len(m.Vertices)-1].Pos.X, rect.Left(), rect.Right())
	}

	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestGradientArea_Topology(t *testing.T) {
	const n = GradientSamples
	rect := RectXYWH(0, 0, 120, 120)

	evaluations := 0
	m := GradientArea(rect, Range{0, MaxChroma}, Range{0, 1}, func(x, y float32) DisplayRGBA {
		evaluations++
		return Gray(200)
	})

	if got := len(m.Vertices); got != (n+1)*(n+1) {
		t.Errorf("vertices = %d, want %d", got, (n+1)*(n+1))
	}
	if got := m.TriangleCount(); got != 2*n*n {
		t.Errorf("triangles = %d, want %d", got, 2*n*n)
	}
	// One evaluation per grid vertex, never per triangle.
	if evaluations != (n+1)*(n+1) {
		t.Errorf("color function evaluated %d times, want %d", evaluations, (n+1)*(n+1))
	}

	// Consistent winding: every triangle has the same area sign.
	first := triangleArea(m, 0)
	for i := 0; i < m.TriangleCount(); i++ {
		a := triangleArea(m, i)
		if a == 0 {
			t.Errorf("triangle %d is degenerate", i)
		}
		if (a > 0) != (first > 0) {
			t.Errorf("triangle %d winding differs from triangle 0", i)
		}
	}

	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestGradientArea_VerticalInversion(t *testing.T) {
	rect := RectXYWH(0, 0, 100, 100)
	var firstY, lastY float32
	i := 0
	m := GradientArea(rect, Range{0, 1}, Range{0, 1}, func(x, y float32) DisplayRGBA {
		if i == 0 {
			firstY = y
		}
		lastY = y
		i++
		return Gray(0)
	})

	// The first grid row is yt=0, which must sit at the bottom of the rect
	// and carry the range minimum; the last row is the maximum at the top.
	if firstY != 0 || lastY != 1 {
		t.Errorf("first/last y samples = %v, %v, want 0, 1", firstY, lastY)
	}
	if m.Vertices[0].Pos.Y != rect.Bottom() {
		t.Errorf("first row at y=%v, want bottom %v", m.Vertices[0].Pos.Y, rect.Bottom())
	}
	if m.Vertices[len(m.Vertices)-1].Pos.Y != rect.Top() {
		t.Errorf("last row at y=%v, want top %v", m.Vertices[len(m.Vertices)-1].Pos.Y, rect.Top())
	}
}

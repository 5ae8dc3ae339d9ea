package okpicker

import (
	"image"
	"math"
)

// SoftwarePainter is a CPU reference implementation of Painter that
// rasterizes into an image.RGBA. Both use premultiplied alpha, so picker
// colors blend with plain source-over arithmetic and no conversion.
//
// It exists to make the widget testable end to end and to drive the demo
// binary; it deliberately skips anti-aliasing and general path support,
// which belong to the real host framework.
type SoftwarePainter struct {
	img *image.RGBA
}

// NewSoftwarePainter creates a painter that draws into img.
func NewSoftwarePainter(img *image.RGBA) *SoftwarePainter {
	return &SoftwarePainter{img: img}
}

// Image returns the destination image.
func (s *SoftwarePainter) Image() *image.RGBA {
	return s.img
}

// blendPixel composites src over the destination pixel at (x, y).
func (s *SoftwarePainter) blendPixel(x, y int, src DisplayRGBA) {
	b := s.img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if src.A == 255 {
		i := s.img.PixOffset(x, y)
		s.img.Pix[i+0] = src.R
		s.img.Pix[i+1] = src.G
		s.img.Pix[i+2] = src.B
		s.img.Pix[i+3] = src.A
		return
	}
	if src.A == 0 && src.R == 0 && src.G == 0 && src.B == 0 {
		return
	}
	i := s.img.PixOffset(x, y)
	inv := uint32(255 - src.A)
	s.img.Pix[i+0] = uint8(uint32(src.R) + (uint32(s.img.Pix[i+0])*inv+127)/255)
	s.img.Pix[i+1] = uint8(uint32(src.G) + (uint32(s.img.Pix[i+1])*inv+127)/255)
	s.img.Pix[i+2] = uint8(uint32(src.B) + (uint32(s.img.Pix[i+2])*inv+127)/255)
	s.img.Pix[i+3] = uint8(uint32(src.A) + (uint32(s.img.Pix[i+3])*inv+127)/255)
}

// FillRect fills every pixel whose center lies inside r.
func (s *SoftwarePainter) FillRect(r Rect, fill DisplayRGBA) {
	y0, y1 := int(math.Floor(float64(r.Top()))), int(math.Ceil(float64(r.Bottom())))
	x0, x1 := int(math.Floor(float64(r.Left()))), int(math.Ceil(float64(r.Right())))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if r.Contains(Pos{float32(x) + 0.5, float32(y) + 0.5}) {
				s.blendPixel(x, y, fill)
			}
		}
	}
}

// StrokeRect outlines r: pixels inside the rect grown by width/2 but
// outside the rect shrunk by width/2.
func (s *SoftwarePainter) StrokeRect(r Rect, width float32, stroke DisplayRGBA) {
	outer := r.Shrink(-width / 2)
	inner := r.Shrink(width / 2)
	y0, y1 := int(math.Floor(float64(outer.Top()))), int(math.Ceil(float64(outer.Bottom())))
	x0, x1 := int(math.Floor(float64(outer.Left()))), int(math.Ceil(float64(outer.Right())))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			center := Pos{float32(x) + 0.5, float32(y) + 0.5}
			if outer.Contains(center) && !inner.Contains(center) {
				s.blendPixel(x, y, stroke)
			}
		}
	}
}

// FillPolygon fills the polygon with even-odd scanlines, then strokes the
// edges as thick line segments.
func (s *SoftwarePainter) FillPolygon(points []Pos, fill DisplayRGBA, strokeWidth float32, stroke DisplayRGBA) {
	if len(points) < 3 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	var xs []float32
	for y := int(math.Floor(float64(minY))); y < int(math.Ceil(float64(maxY))); y++ {
		cy := float32(y) + 0.5
		xs = xs[:0]
		for i := range points {
			a := points[i]
			b := points[(i+1)%len(points)]
			if (a.Y <= cy) == (b.Y <= cy) {
				continue // edge does not cross this scanline
			}
			t := (cy - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Floor(float64(xs[i]))); x < int(math.Ceil(float64(xs[i+1]))); x++ {
				cx := float32(x) + 0.5
				if cx >= xs[i] && cx < xs[i+1] {
					s.blendPixel(x, y, fill)
				}
			}
		}
	}

	if strokeWidth > 0 {
		for i := range points {
			s.strokeSegment(points[i], points[(i+1)%len(points)], strokeWidth, stroke)
		}
	}
}

// FillCircle fills a circle and strokes its rim.
func (s *SoftwarePainter) FillCircle(center Pos, radius float32, fill DisplayRGBA, strokeWidth float32, stroke DisplayRGBA) {
	reach := radius + strokeWidth
	y0 := int(math.Floor(float64(center.Y - reach)))
	y1 := int(math.Ceil(float64(center.Y + reach)))
	x0 := int(math.Floor(float64(center.X - reach)))
	x1 := int(math.Ceil(float64(center.X + reach)))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := float32(x) + 0.5 - center.X
			dy := float32(y) + 0.5 - center.Y
			d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
			switch {
			case strokeWidth > 0 && d >= radius && d < radius+strokeWidth:
				s.blendPixel(x, y, stroke)
			case d < radius:
				s.blendPixel(x, y, fill)
			}
		}
	}
}

// Mesh rasterizes each triangle with barycentric interpolation of the
// vertex colors.
func (s *SoftwarePainter) Mesh(m *Mesh) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		s.triangle(
			m.Vertices[m.Indices[i]],
			m.Vertices[m.Indices[i+1]],
			m.Vertices[m.Indices[i+2]],
		)
	}
}

// edge is twice the signed area of the triangle (a, b, p).
func edge(a, b, p Pos) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func (s *SoftwarePainter) triangle(va, vb, vc Vertex) {
	area := edge(va.Pos, vb.Pos, vc.Pos)
	if area == 0 {
		return
	}

	minX := min(va.Pos.X, min(vb.Pos.X, vc.Pos.X))
	maxX := max(va.Pos.X, max(vb.Pos.X, vc.Pos.X))
	minY := min(va.Pos.Y, min(vb.Pos.Y, vc.Pos.Y))
	maxY := max(va.Pos.Y, max(vb.Pos.Y, vc.Pos.Y))

	for y := int(math.Floor(float64(minY))); y < int(math.Ceil(float64(maxY))); y++ {
		for x := int(math.Floor(float64(minX))); x < int(math.Ceil(float64(maxX))); x++ {
			p := Pos{float32(x) + 0.5, float32(y) + 0.5}
			w0 := edge(vb.Pos, vc.Pos, p) / area
			w1 := edge(vc.Pos, va.Pos, p) / area
			w2 := edge(va.Pos, vb.Pos, p) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			s.blendPixel(x, y, DisplayRGBA{
				R: lerpChannel(va.Color.R, vb.Color.R, vc.Color.R, w0, w1, w2),
				G: lerpChannel(va.Color.G, vb.Color.G, vc.Color.G, w0, w1, w2),
				B: lerpChannel(va.Color.B, vb.Color.B, vc.Color.B, w0, w1, w2),
				A: lerpChannel(va.Color.A, vb.Color.A, vc.Color.A, w0, w1, w2),
			})
		}
	}
}

// lerpChannel blends one color channel by barycentric weights.
func lerpChannel(a, b, c uint8, w0, w1, w2 float32) uint8 {
	v := float32(a)*w0 + float32(b)*w1 + float32(c)*w2
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// strokeSegment stamps a thick line segment between two points.
func (s *SoftwarePainter) strokeSegment(a, b Pos, width float32, stroke DisplayRGBA) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	steps := int(length) + 1
	half := width / 2
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		px := a.X + t*dx
		py := a.Y + t*dy
		for y := int(math.Floor(float64(py - half))); y <= int(math.Ceil(float64(py+half))); y++ {
			for x := int(math.Floor(float64(px - half))); x <= int(math.Ceil(float64(px+half))); x++ {
				s.blendPixel(x, y, stroke)
			}
		}
	}
}

// sortFloats is an insertion sort; scanline crossing lists are tiny.
func sortFloats(xs []float32) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

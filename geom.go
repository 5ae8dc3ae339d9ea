package okpicker

// Pos is a position in host pixel coordinates.
// X increases right, Y increases down.
type Pos struct {
	X, Y float32
}

// P is a convenience function to create a Pos.
func P(x, y float32) Pos {
	return Pos{X: x, Y: y}
}

// Rect is an axis-aligned rectangle in host pixel coordinates.
// Min is the top-left corner, Max the bottom-right.
type Rect struct {
	Min, Max Pos
}

// RectXYWH creates a Rect from a top-left corner and a size.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Min: Pos{X: x, Y: y}, Max: Pos{X: x + w, Y: y + h}}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Left returns the minimum x coordinate.
func (r Rect) Left() float32 { return r.Min.X }

// Right returns the maximum x coordinate.
func (r Rect) Right() float32 { return r.Max.X }

// Top returns the minimum y coordinate.
func (r Rect) Top() float32 { return r.Min.Y }

// Bottom returns the maximum y coordinate.
func (r Rect) Bottom() float32 { return r.Max.Y }

// Center returns the center point of the rectangle.
func (r Rect) Center() Pos {
	return Pos{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Shrink returns the rectangle with all four sides moved inward by d.
func (r Rect) Shrink(d float32) Rect {
	return Rect{
		Min: Pos{X: r.Min.X + d, Y: r.Min.Y + d},
		Max: Pos{X: r.Max.X - d, Y: r.Max.Y - d},
	}
}

// Contains reports whether p lies inside the rectangle.
// The top and left edges are inclusive, bottom and right exclusive.
func (r Rect) Contains(p Pos) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// LeftHalf returns the left half of the rectangle.
func (r Rect) LeftHalf() Rect {
	return Rect{Min: r.Min, Max: Pos{X: (r.Min.X + r.Max.X) / 2, Y: r.Max.Y}}
}

// RightHalf returns the right half of the rectangle.
func (r Rect) RightHalf() Rect {
	return Rect{Min: Pos{X: (r.Min.X + r.Max.X) / 2, Y: r.Min.Y}, Max: r.Max}
}

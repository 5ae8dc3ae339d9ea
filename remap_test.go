package okpicker

import "testing"

func TestRemapClamp(t *testing.T) {
	tests := []struct {
		name     string
		x        float32
		from, to Range
		want     float32
	}{
		{"midpoint", 5, Range{0, 10}, Range{0, 1}, 0.5},
		{"start", 0, Range{0, 10}, Range{-1, 1}, -1},
		{"end", 10, Range{0, 10}, Range{-1, 1}, 1},
		{"clamp below", -3, Range{0, 10}, Range{0, 1}, 0},
		{"clamp above", 42, Range{0, 10}, Range{0, 1}, 1},
		{"degenerate source", 7, Range{4, 4}, Range{0, 1}, 0},
		{"reversed source", 0, Range{10, 0}, Range{0, 1}, 1},
		{"reversed source end", 10, Range{10, 0}, Range{0, 1}, 0},
		{"reversed source mid", 2.5, Range{10, 0}, Range{0, 1}, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemapClamp(tt.x, tt.from, tt.to)
			if absDiff32(got, tt.want) > 1e-6 {
				t.Errorf("RemapClamp(%v, %v, %v) = %v, want %v",
					tt.x, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRemapClamp_RoundTrip(t *testing.T) {
	// value → pixel → value must be the identity for in-range values,
	// so slider indicators land exactly on the value they were drawn for.
	pixels := Range{13, 269}
	values := Range{-0.5, 0.5}
	for _, v := range []float32{-0.5, -0.25, 0, 0.123, 0.5} {
		px := Lerp(pixels, RemapClamp(v, values, Range{0, 1}))
		back := RemapClamp(px, pixels, values)
		if absDiff32(back, v) > 1e-5 {
			t.Errorf("round trip %v → %v → %v", v, px, back)
		}
	}
}

func TestRemapClamp_VerticalInversion(t *testing.T) {
	// A vertical slider maps the bottom pixel to the range minimum and the
	// top pixel to the maximum, even though screen y grows downward.
	top, bottom := float32(100), float32(200)
	values := Range{0, 1}
	if got := RemapClamp(bottom, Range{bottom, top}, values); got != 0 {
		t.Errorf("bottom pixel = %v, want 0", got)
	}
	if got := RemapClamp(top, Range{bottom, top}, values); got != 1 {
		t.Errorf("top pixel = %v, want 1", got)
	}
	if got := RemapClamp(150, Range{bottom, top}, values); absDiff32(got, 0.5) > 1e-6 {
		t.Errorf("middle pixel = %v, want 0.5", got)
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{-1, 1}
	if got := r.Clamp(-5); got != -1 {
		t.Errorf("Clamp(-5) = %v", got)
	}
	if got := r.Clamp(5); got != 1 {
		t.Errorf("Clamp(5) = %v", got)
	}
	if got := r.Clamp(0.5); got != 0.5 {
		t.Errorf("Clamp(0.5) = %v", got)
	}
	// Reversed ranges clamp to the same interval.
	rev := Range{1, -1}
	if got := rev.Clamp(-5); got != -1 {
		t.Errorf("reversed Clamp(-5) = %v", got)
	}
}

func TestRect(t *testing.T) {
	r := RectXYWH(10, 20, 30, 40)
	if r.Width() != 30 || r.Height() != 40 {
		t.Fatalf("size = %v x %v", r.Width(), r.Height())
	}
	if r.Center() != (Pos{25, 40}) {
		t.Errorf("Center() = %v", r.Center())
	}
	if !r.Contains(Pos{10, 20}) || r.Contains(Pos{40, 60}) {
		t.Errorf("Contains edge handling wrong")
	}
	if r.Shrink(5) != RectXYWH(15, 25, 20, 30) {
		t.Errorf("Shrink(5) = %v", r.Shrink(5))
	}
	if r.LeftHalf().Width() != 15 || r.RightHalf().Width() != 15 {
		t.Errorf("halves: %v, %v", r.LeftHalf(), r.RightHalf())
	}
	if !RectXYWH(0, 0, 0, 10).IsEmpty() {
		t.Errorf("zero-width rect should be empty")
	}
}

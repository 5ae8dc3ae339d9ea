package okpicker

// Range is an inclusive numeric interval. Min may be greater than Max to
// describe a reversed axis, which the picker uses for vertical sliders
// where screen y grows downward but values grow upward.
type Range struct {
	Min, Max float32
}

// Clamp restricts x to the interval.
func (r Range) Clamp(x float32) float32 {
	lo, hi := r.Min, r.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp linearly interpolates within the range: t=0 yields Min, t=1 yields Max.
func Lerp(r Range, t float32) float32 {
	return r.Min + (r.Max-r.Min)*t
}

// RemapClamp linearly maps x from one range onto another, clamping the
// result to the destination range. A degenerate source range (Min == Max)
// yields to.Min rather than dividing by zero. RemapClamp and Lerp are exact
// inverses for values inside the source range, so indicator positions drawn
// with Lerp land back on the same value.
func RemapClamp(x float32, from, to Range) float32 {
	if from.Max < from.Min {
		return RemapClamp(x, Range{from.Max, from.Min}, Range{to.Max, to.Min})
	}
	if from.Min == from.Max {
		return to.Min
	}
	if x <= from.Min {
		return to.Min
	}
	if x >= from.Max {
		return to.Max
	}
	t := (x - from.Min) / (from.Max - from.Min)
	return to.Clamp(Lerp(to, t))
}

// clamp01 restricts a value to [0, 1].
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

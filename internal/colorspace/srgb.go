// Package colorspace provides sRGB transfer functions and Oklab conversions
// for okpicker.
package colorspace

import "math"

// SRGBToLinear converts a gamma-encoded sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64(s+0.055)/1.055, 2.4))
}

// LinearToSRGB converts a linear component to gamma-encoded sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// EncodeU8 converts a linear component to a gamma-encoded 8-bit value,
// clamping to [0,1] and rounding to the nearest integer.
func EncodeU8(l float32) uint8 {
	return QuantizeU8(LinearToSRGB(l))
}

// DecodeU8 converts a gamma-encoded 8-bit value to a linear component.
func DecodeU8(s uint8) float32 {
	return SRGBToLinear(float32(s) / 255.0)
}

// QuantizeU8 clamps a component to [0,1] and converts to uint8 with rounding.
func QuantizeU8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

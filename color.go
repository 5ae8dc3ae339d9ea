package okpicker

import (
	"math"

	"github.com/fu5ha/okpicker/internal/colorspace"
)

// MaxChroma is the practical chroma bound used by the picker's sliders.
// The true Oklab gamut boundary is hue- and lightness-dependent; 0.5
// comfortably covers everything sRGB can display.
const MaxChroma = 0.5

// Oklch is a perceptual color in cylindrical Oklab coordinates plus alpha.
// L is lightness in [0,1], C is chroma in [0, MaxChroma], H is hue in
// radians in (−π, π], A is alpha in [0,1].
//
// Components may drift outside their nominal ranges while the user drags a
// slider; Display clamps before converting. H is kept verbatim even when
// C is zero and the hue has no visible effect; the round-trip cache
// exists to hand it back on the next edit.
type Oklch struct {
	L, C, H, A float32
}

// DisplayRGBA is a gamma-encoded sRGB color with premultiplied alpha,
// 8 bits per channel. The RGB channels hold the encoded value of the
// linear channel already multiplied by alpha, so consumers composite it
// directly without a separate un-premultiply step.
type DisplayRGBA struct {
	R, G, B, A uint8
}

// Display converts the perceptual color to its quantized display form:
// LCh → Oklab → linear sRGB, per-channel gamut clamp, premultiply by
// alpha in linear space, gamma encode, quantize. Deterministic: equal
// inputs always produce equal outputs.
func (c Oklch) Display() DisplayRGBA {
	l := clamp01(c.L)
	ch := Range{0, MaxChroma}.Clamp(c.C)
	al := clamp01(c.A)

	a := ch * float32(math.Cos(float64(c.H)))
	b := ch * float32(math.Sin(float64(c.H)))
	lr, lg, lb := colorspace.OklabToLinear(l, a, b)

	// Gamut clipping: plain per-channel clamp, then premultiply before
	// encoding. Alpha zero therefore forces RGB to exactly zero.
	return DisplayRGBA{
		R: colorspace.EncodeU8(clamp01(lr) * al),
		G: colorspace.EncodeU8(clamp01(lg) * al),
		B: colorspace.EncodeU8(clamp01(lb) * al),
		A: colorspace.QuantizeU8(al),
	}
}

// Oklch converts the display color back to perceptual form. The result is
// the best estimate from the quantized bytes alone: chroma is approximate
// and the hue of an achromatic color is lost (it comes back as zero).
// Callers that need the original hue consult the RoundTripCache instead.
func (d DisplayRGBA) Oklch() Oklch {
	al := float32(d.A) / 255.0

	var lr, lg, lb float32
	if al > 0 {
		lr = colorspace.DecodeU8(d.R) / al
		lg = colorspace.DecodeU8(d.G) / al
		lb = colorspace.DecodeU8(d.B) / al
	}
	// al == 0: treat RGB as black, nothing to divide.

	l, a, b := colorspace.LinearToOklab(lr, lg, lb)
	return Oklch{
		L: l,
		C: float32(math.Sqrt(float64(a*a + b*b))),
		H: float32(math.Atan2(float64(b), float64(a))),
		A: al,
	}
}

// Opaque returns the color with alpha forced to fully opaque.
func (c Oklch) Opaque() Oklch {
	c.A = 1
	return c
}

// Opaque returns the display color with alpha stripped: the un-premultiplied
// color at full opacity.
func (d DisplayRGBA) Opaque() DisplayRGBA {
	return d.Oklch().Opaque().Display()
}

// Key returns the display color as a 4-byte array, the round-trip cache key.
func (d DisplayRGBA) Key() [4]byte {
	return [4]byte{d.R, d.G, d.B, d.A}
}

// Gray returns an opaque display color with all channels set to v.
func Gray(v uint8) DisplayRGBA {
	return DisplayRGBA{R: v, G: v, B: v, A: 255}
}

// luminance returns the perceived intensity of the premultiplied color in
// linear space.
func luminance(d DisplayRGBA) float32 {
	return 0.3*colorspace.DecodeU8(d.R) +
		0.59*colorspace.DecodeU8(d.G) +
		0.11*colorspace.DecodeU8(d.B)
}

// contrastColor picks a stroke color that stays visible on top of d.
func contrastColor(d DisplayRGBA) DisplayRGBA {
	if luminance(d) < 0.5 {
		return Gray(255)
	}
	return Gray(0)
}

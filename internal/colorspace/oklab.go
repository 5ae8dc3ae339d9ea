package colorspace

import "math"

// LinearToOklab converts linear sRGB components to Oklab (L, a, b).
// Standard Björn Ottosson matrices: linear RGB → LMS, cube root, LMS' → Lab.
func LinearToOklab(r, g, b float32) (float32, float32, float32) {
	l := 0.4122214708*float64(r) + 0.5363325363*float64(g) + 0.0514459929*float64(b)
	m := 0.2119034982*float64(r) + 0.6806995451*float64(g) + 0.1073969566*float64(b)
	s := 0.0883024619*float64(r) + 0.2817188376*float64(g) + 0.6299787005*float64(b)

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return float32(L), float32(A), float32(B)
}

// OklabToLinear converts Oklab (L, a, b) to linear sRGB components.
// The result may lie outside [0,1] for colors outside the sRGB gamut;
// callers clamp as needed.
func OklabToLinear(L, a, b float32) (float32, float32, float32) {
	lp := float64(L) + 0.3963377774*float64(a) + 0.2158037573*float64(b)
	mp := float64(L) - 0.1055613458*float64(a) - 0.0638541728*float64(b)
	sp := float64(L) - 0.0894841775*float64(a) - 1.2914855480*float64(b)

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return float32(r), float32(g), float32(bl)
}

package colorspace

import (
	"math"
	"testing"
)

func absDiff(a, b float32) float32 {
	return float32(math.Abs(float64(a - b)))
}

func TestTransferRoundTrip(t *testing.T) {
	// Every 8-bit code must survive decode → encode exactly.
	for i := 0; i <= 255; i++ {
		s := uint8(i)
		got := EncodeU8(DecodeU8(s))
		if got != s {
			t.Errorf("EncodeU8(DecodeU8(%d)) = %d", s, got)
		}
	}
}

func TestTransferEndpoints(t *testing.T) {
	if got := SRGBToLinear(0); got != 0 {
		t.Errorf("SRGBToLinear(0) = %v, want 0", got)
	}
	if got := LinearToSRGB(0); got != 0 {
		t.Errorf("LinearToSRGB(0) = %v, want 0", got)
	}
	if got := SRGBToLinear(1); absDiff(got, 1) > 1e-5 {
		t.Errorf("SRGBToLinear(1) = %v, want 1", got)
	}
	if got := LinearToSRGB(1); absDiff(got, 1) > 1e-5 {
		t.Errorf("LinearToSRGB(1) = %v, want 1", got)
	}
}

func TestQuantizeU8(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{1.5, 255},
	}
	for _, tt := range tests {
		if got := QuantizeU8(tt.in); got != tt.want {
			t.Errorf("QuantizeU8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLinearToOklab_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float32
		wantL   float32
		wantA   float32
		wantB   float32
	}{
		{name: "black", r: 0, g: 0, b: 0, wantL: 0, wantA: 0, wantB: 0},
		{name: "white", r: 1, g: 1, b: 1, wantL: 1, wantA: 0, wantB: 0},
		{name: "red", r: 1, g: 0, b: 0, wantL: 0.6279, wantA: 0.2249, wantB: 0.1258},
		{name: "green", r: 0, g: 1, b: 0, wantL: 0.8664, wantA: -0.2339, wantB: 0.1795},
		{name: "blue", r: 0, g: 0, b: 1, wantL: 0.4520, wantA: -0.0324, wantB: -0.3115},
	}

	const tol = 0.001
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			L, a, b := LinearToOklab(tt.r, tt.g, tt.b)
			if absDiff(L, tt.wantL) > tol || absDiff(a, tt.wantA) > tol || absDiff(b, tt.wantB) > tol {
				t.Errorf("LinearToOklab = (%v, %v, %v), want (%v, %v, %v)",
					L, a, b, tt.wantL, tt.wantA, tt.wantB)
			}
		})
	}
}

func TestOklabRoundTrip(t *testing.T) {
	colors := [][3]float32{
		{0, 0, 0},
		{1, 1, 1},
		{1, 0, 0},
		{0.25, 0.5, 0.75},
		{0.01, 0.99, 0.5},
	}
	const tol = 1e-4
	for _, c := range colors {
		L, a, b := LinearToOklab(c[0], c[1], c[2])
		r, g, bl := OklabToLinear(L, a, b)
		if absDiff(r, c[0]) > tol || absDiff(g, c[1]) > tol || absDiff(bl, c[2]) > tol {
			t.Errorf("round trip %v → (%v, %v, %v)", c, r, g, bl)
		}
	}
}

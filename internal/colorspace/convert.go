package colorspace

import "math"

// linearize removes sRGB companding from a single channel.
func linearize(c float64) float64 {
	if !sRGBCompand {
		return math.Pow(c, gamma)
	}
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// compand applies sRGB companding to a single linear channel.
func compand(c float64) float64 {
	if !sRGBCompand {
		return math.Pow(c, 1/gamma)
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// labF is the forward LAB companding function.
func labF(t float64) float64 {
	if t > t0 {
		return math.Pow(t, third)
	}
	return alpha*t + bIntercept
}

// labFInv inverts labF.
func labFInv(t float64) float64 {
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - bIntercept)
}

// XYZ converts an sRGB color to normalized XYZ.
func (c RGB) XYZ() XYZ {
	rl, gl, bl := linearize(c.R), linearize(c.G), linearize(c.B)

	// sRGB -> XYZ, reference white folded into X and Z
	return XYZ{
		X: (rl*0.4124564 + gl*0.3575761 + bl*0.1804375) / XN,
		Y: rl*0.2126729 + gl*0.7151522 + bl*0.0721750,
		Z: (rl*0.0193339 + gl*0.1191920 + bl*0.9503041) / ZN,
	}
}

// RGB converts a normalized XYZ color to sRGB. Every channel is clamped to
// 0-1, which absorbs float drift and out-of-gamut values alike.
func (c XYZ) RGB() RGB {
	x := c.X * XN
	y := c.Y
	z := c.Z * ZN

	rl := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	gl := x*-0.9692660 + y*1.8760108 + z*0.0415560
	bl := x*0.0556434 + y*-0.2040259 + z*1.0572252

	return RGB{
		R: clamp01(compand(rl)),
		G: clamp01(compand(gl)),
		B: clamp01(compand(bl)),
	}
}

// LAB converts a normalized XYZ color to LAB.
func (c XYZ) LAB() LAB {
	fx, fy, fz := labF(c.X), labF(c.Y), labF(c.Z)
	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// XYZ converts a LAB color to normalized XYZ.
func (c LAB) XYZ() XYZ {
	ty := (c.L + 16) / 116
	return XYZ{
		X: labFInv(ty + c.A/500),
		Y: labFInv(ty),
		Z: labFInv(ty - c.B/200),
	}
}

// LCH converts a LAB color to its cylindrical form.
func (c LAB) LCH() LCH {
	return LCH{
		L: c.L,
		C: math.Sqrt(c.A*c.A + c.B*c.B),
		H: math.Atan2(c.B, c.A),
	}
}

// LAB converts an LCH color back to LAB.
func (c LCH) LAB() LAB {
	sin, cos := math.Sincos(c.H)
	return LAB{
		L: c.L,
		A: c.C * cos,
		B: c.C * sin,
	}
}

// LUV converts a normalized XYZ color to LUV.
//
// Black (X+15Y+3Z == 0) has no chromaticity; it maps to (L, 0, 0).
func (c XYZ) LUV() LUV {
	y := c.Y / YN

	var l float64
	if y <= t0 {
		l = kappa * y
	} else {
		l = 116*math.Pow(y, third) - 16
	}

	denom := c.X + 15*c.Y + 3*c.Z
	if denom == 0 {
		return LUV{L: l}
	}
	uPrime := 4 * c.X / denom
	vPrime := 9 * c.Y / denom

	return LUV{
		L: l,
		U: 13 * l * (uPrime - uPrimeN),
		V: 13 * l * (vPrime - vPrimeN),
	}
}

// XYZ converts a LUV color to normalized XYZ. L == 0 maps to (0, 0, 0).
func (c LUV) XYZ() XYZ {
	if c.L == 0 {
		return XYZ{}
	}

	uPrime := c.U/(13*c.L) + uPrimeN
	vPrime := c.V/(13*c.L) + vPrimeN

	var y float64
	if c.L <= 8 {
		y = c.L / kappa
	} else {
		t := (c.L + 16) / 116
		y = t * t * t
	}
	y *= YN

	return XYZ{
		X: y * (9 * uPrime) / (4 * vPrime),
		Y: y,
		Z: y * (12 - 3*uPrime - 20*vPrime) / (4 * vPrime),
	}
}

package colorspace

// D65 reference white.
const (
	XN = 0.95047
	YN = 1.0
	ZN = 1.08883
)

// CIE LAB/LUV constants. Go evaluates these exactly at compile time:
// t0 is (6/29)^3 ~ 0.008856, alpha is (6/29)^-2 / 3 ~ 7.787037 and
// kappa is (29/3)^3 ~ 903.3.
const (
	delta      = 6.0 / 29.0
	bIntercept = 4.0 / 29.0
	t0         = delta * delta * delta
	alpha      = 1.0 / (3.0 * delta * delta)
	kappa      = (29.0 / 3.0) * (29.0 / 3.0) * (29.0 / 3.0)
	third      = 1.0 / 3.0
)

// Simplified gamma used when sRGB companding is disabled.
const gamma = 2.2

// sRGBCompand selects sRGB companding (true) or the simplified 2.2 gamma
// curve. The fixtures in the tests assume sRGB companding.
const sRGBCompand = true

// LUV white point chromaticity.
const (
	denomN  = XN + 15*YN + 3*ZN
	uPrimeN = 4 * XN / denomN
	vPrimeN = 9 * YN / denomN
)

// Package colorspace converts color values between RGB, XYZ, LAB, LCH and LUV.
//
// Each color space has a value type with named axes (RGB, XYZ, LAB, LCH, LUV)
// and every type converts to and from the ordered Triple form. Conversions are
// defined on the edges of a small graph and composed for every other pair:
//
//	RGB <-> XYZ <-> LAB <-> LCH
//	         ^
//	         +----> LUV
//
// # Reference Model
//
// All conversions assume sRGB primaries with sRGB companding and the D65
// reference white (XN=0.95047, YN=1.0, ZN=1.08883). XYZ values produced by
// this package are normalized by the reference white on X and Z, so the
// white point is (1, 1, 1).
//
// # Value Ranges
//
//   - RGB: nominally 0-1. Input is not checked; output of any conversion
//     to RGB is clamped to 0-1.
//   - LAB/LCH/LUV lightness: 0-100.
//   - LCH hue: radians as returned by math.Atan2, in (-Pi, Pi]. The hue is
//     not normalized to [0, 2*Pi).
//
// # Dispatch
//
// Convert takes a source and destination Space. Converting a space to itself
// returns the input unchanged. Converter resolves the conversion path once
// and returns a Func, which is what bulk callers should use:
//
//	toLCH := colorspace.Converter(colorspace.RGBSpace, colorspace.LCHSpace)
//	lch := toLCH(colorspace.Triple{1, 0, 0}) // ~ {53.2, 104.6, 0.7}
//
// # Thread Safety
//
// Everything in this package is a pure function over values and is safe for
// concurrent use.
package colorspace

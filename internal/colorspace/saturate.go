package colorspace

var (
	rgbToLCH = Converter(RGBSpace, LCHSpace)
	lchToRGB = Converter(LCHSpace, RGBSpace)
)

// Saturate scales the LCH chroma of an RGB color by satmult and returns the
// result in RGB. A satmult of 0 yields a neutral gray at the original
// lightness; values above 1 may push channels past the gamut, where they are
// clamped to 0-1.
func Saturate(rgb Triple, satmult float64) Triple {
	lch := rgbToLCH(rgb)
	lch[1] *= satmult
	return lchToRGB(lch)
}

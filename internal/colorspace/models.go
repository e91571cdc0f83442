package colorspace

// Triple is the ordered three-value form every color type converts to and
// from. Bulk code and the dispatcher work on Triples only.
type Triple [3]float64

// Func converts one Triple into another.
type Func func(Triple) Triple

// RGB represents an sRGB color with components nominally in 0-1.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// XYZ represents a CIE XYZ color normalized by the D65 reference white.
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LAB represents a CIE L*a*b* color.
type LAB struct {
	L float64 `json:"l"` // Lightness: 0-100
	A float64 `json:"a"` // Green (-) to red (+), unbounded
	B float64 `json:"b"` // Blue (-) to yellow (+), unbounded
}

// LCH is the cylindrical form of LAB.
type LCH struct {
	L float64 `json:"l"` // Lightness: 0-100, same as LAB
	C float64 `json:"c"` // Chroma: distance from the neutral axis
	H float64 `json:"h"` // Hue in radians, (-Pi, Pi]
}

// LUV represents a CIE L*u*v* color.
type LUV struct {
	L float64 `json:"l"`
	U float64 `json:"u"`
	V float64 `json:"v"`
}

func (c RGB) Triple() Triple { return Triple{c.R, c.G, c.B} }
func (c XYZ) Triple() Triple { return Triple{c.X, c.Y, c.Z} }
func (c LAB) Triple() Triple { return Triple{c.L, c.A, c.B} }
func (c LCH) Triple() Triple { return Triple{c.L, c.C, c.H} }
func (c LUV) Triple() Triple { return Triple{c.L, c.U, c.V} }

func RGBFromTriple(t Triple) RGB { return RGB{R: t[0], G: t[1], B: t[2]} }
func XYZFromTriple(t Triple) XYZ { return XYZ{X: t[0], Y: t[1], Z: t[2]} }
func LABFromTriple(t Triple) LAB { return LAB{L: t[0], A: t[1], B: t[2]} }
func LCHFromTriple(t Triple) LCH { return LCH{L: t[0], C: t[1], H: t[2]} }
func LUVFromTriple(t Triple) LUV { return LUV{L: t[0], U: t[1], V: t[2]} }

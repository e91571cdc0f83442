package colorspace

import (
	"fmt"
	"strings"
)

// Space identifies one of the supported color spaces. The integer values are
// the external codes accepted by SpaceFromCode.
type Space int

const (
	RGBSpace Space = iota
	XYZSpace
	LABSpace
	LCHSpace
	LUVSpace

	numSpaces
)

var spaceNames = [numSpaces]string{"rgb", "xyz", "lab", "lch", "luv"}

// Spaces lists every supported Space in code order.
func Spaces() []Space {
	return []Space{RGBSpace, XYZSpace, LABSpace, LCHSpace, LUVSpace}
}

// Valid reports whether s is one of the supported spaces.
func (s Space) Valid() bool {
	return s >= 0 && s < numSpaces
}

func (s Space) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Space(%d)", int(s))
	}
	return spaceNames[s]
}

// ParseSpace maps a case-insensitive name ("rgb", "LCH", ...) to a Space.
func ParseSpace(name string) (Space, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range spaceNames {
		if n == candidate {
			return Space(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color space %q", name)
}

// SpaceFromCode maps an integer code (0=rgb ... 4=luv) to a Space.
func SpaceFromCode(code int) (Space, error) {
	s := Space(code)
	if !s.Valid() {
		return 0, fmt.Errorf("unknown color enum value %d", code)
	}
	return s, nil
}

type edgeKey struct{ from, to Space }

// edges holds one conversion per edge of the graph.
var edges = map[edgeKey]Func{
	{RGBSpace, XYZSpace}: func(t Triple) Triple { return RGBFromTriple(t).XYZ().Triple() },
	{XYZSpace, RGBSpace}: func(t Triple) Triple { return XYZFromTriple(t).RGB().Triple() },
	{XYZSpace, LABSpace}: func(t Triple) Triple { return XYZFromTriple(t).LAB().Triple() },
	{LABSpace, XYZSpace}: func(t Triple) Triple { return LABFromTriple(t).XYZ().Triple() },
	{LABSpace, LCHSpace}: func(t Triple) Triple { return LABFromTriple(t).LCH().Triple() },
	{LCHSpace, LABSpace}: func(t Triple) Triple { return LCHFromTriple(t).LAB().Triple() },
	{XYZSpace, LUVSpace}: func(t Triple) Triple { return XYZFromTriple(t).LUV().Triple() },
	{LUVSpace, XYZSpace}: func(t Triple) Triple { return LUVFromTriple(t).XYZ().Triple() },
}

// toXYZ and fromXYZ are the hops between a space and the XYZ hub.
var (
	toXYZ = [numSpaces][]Space{
		RGBSpace: {RGBSpace, XYZSpace},
		XYZSpace: {XYZSpace},
		LABSpace: {LABSpace, XYZSpace},
		LCHSpace: {LCHSpace, LABSpace, XYZSpace},
		LUVSpace: {LUVSpace, XYZSpace},
	}
	fromXYZ = [numSpaces][]Space{
		RGBSpace: {XYZSpace, RGBSpace},
		XYZSpace: {XYZSpace},
		LABSpace: {XYZSpace, LABSpace},
		LCHSpace: {XYZSpace, LABSpace, LCHSpace},
		LUVSpace: {XYZSpace, LUVSpace},
	}
)

// Route returns the spaces visited converting src to dst, both ends
// included. LAB and LCH convert directly; every other pair passes through
// XYZ. Route panics if either space is invalid.
func Route(src, dst Space) []Space {
	mustValid(src)
	mustValid(dst)

	switch {
	case src == dst:
		return []Space{src}
	case src == LABSpace && dst == LCHSpace, src == LCHSpace && dst == LABSpace:
		return []Space{src, dst}
	}

	route := append([]Space(nil), toXYZ[src]...)
	return append(route, fromXYZ[dst][1:]...)
}

// Converter resolves the conversion from src to dst into a single Func.
// Converting a space to itself returns the input unchanged.
func Converter(src, dst Space) Func {
	route := Route(src, dst)
	if len(route) == 1 {
		return func(t Triple) Triple { return t }
	}

	steps := make([]Func, 0, len(route)-1)
	for i := 1; i < len(route); i++ {
		steps = append(steps, edges[edgeKey{route[i-1], route[i]}])
	}
	if len(steps) == 1 {
		return steps[0]
	}

	return func(t Triple) Triple {
		for _, step := range steps {
			t = step(t)
		}
		return t
	}
}

// Convert converts t from src to dst. It never fails for valid spaces and
// panics for invalid ones; callers taking external input should validate
// with ParseSpace or SpaceFromCode first.
func Convert(t Triple, src, dst Space) Triple {
	if src == dst {
		mustValid(src)
		return t
	}
	return Converter(src, dst)(t)
}

func mustValid(s Space) {
	if !s.Valid() {
		panic(fmt.Sprintf("colorspace: invalid %v", s))
	}
}

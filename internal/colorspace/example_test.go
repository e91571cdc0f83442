package colorspace_test

import (
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

func ExampleConverter() {
	toLCH := colorspace.Converter(colorspace.RGBSpace, colorspace.LCHSpace)
	lch := toLCH(colorspace.Triple{1, 0, 0})
	fmt.Printf("%.1f %.1f %.1f\n", lch[0], lch[1], lch[2])
	// Output: 53.2 104.6 0.7
}

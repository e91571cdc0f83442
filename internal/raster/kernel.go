package raster

import (
	"errors"
	"fmt"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// ErrInvalidShape is returned when a raster's band axis is not length 3.
var ErrInvalidShape = errors.New("the 0th dimension must contain 3 bands")

// checkShape validates a raster for per-pixel color work.
func checkShape(r *Raster) error {
	if r == nil {
		return fmt.Errorf("%w: raster is nil", ErrInvalidShape)
	}
	if r.bands != 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidShape, r.bands)
	}
	return nil
}

// Map applies fn to every pixel of src and returns the results in a new
// raster of the same shape. src is not modified.
//
// The shape is checked before the output is allocated. Rows are processed
// in parallel; fn must not depend on anything but its argument, which makes
// the output identical to a sequential evaluation.
func Map(src *Raster, fn colorspace.Func) (*Raster, error) {
	if err := checkShape(src); err != nil {
		return nil, err
	}

	out, err := New(3, src.height, src.width)
	if err != nil {
		return nil, err
	}
	if src.height == 0 || src.width == 0 {
		return out, nil
	}

	plane := src.height * src.width
	in := src.data
	dst := out.data
	parallel.Line(src.height, func(start, end int) {
		for i := start * src.width; i < end*src.width; i++ {
			c := fn(colorspace.Triple{in[i], in[plane+i], in[2*plane+i]})
			dst[i] = c[0]
			dst[plane+i] = c[1]
			dst[2*plane+i] = c[2]
		}
	})

	return out, nil
}

// ConvertBulk converts every pixel of r from src to dst.
func ConvertBulk(r *Raster, src, dst colorspace.Space) (*Raster, error) {
	if err := checkShape(r); err != nil {
		return nil, err
	}
	return Map(r, colorspace.Converter(src, dst))
}

// SaturateBulk treats the bands of r as R, G, B and scales the LCH chroma of
// every pixel by satmult.
func SaturateBulk(r *Raster, satmult float64) (*Raster, error) {
	return Map(r, func(t colorspace.Triple) colorspace.Triple {
		return colorspace.Saturate(t, satmult)
	})
}

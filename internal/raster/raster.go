package raster

import (
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// Raster is a band-major bands×height×width array of float64 values.
//
// Element (b, y, x) lives at Data()[b*height*width + y*width + x]. Color
// rasters have exactly three bands; other band counts can be represented so
// that callers get a shape error from the kernel rather than a panic.
type Raster struct {
	bands  int
	height int
	width  int
	data   []float64
}

// New allocates a zero-filled raster.
func New(bands, height, width int) (*Raster, error) {
	if bands < 0 || height < 0 || width < 0 {
		return nil, fmt.Errorf("invalid raster shape (%d, %d, %d)", bands, height, width)
	}
	return &Raster{
		bands:  bands,
		height: height,
		width:  width,
		data:   make([]float64, bands*height*width),
	}, nil
}

// FromSlice wraps data as a raster without copying. The length of data must
// equal bands*height*width.
func FromSlice(data []float64, bands, height, width int) (*Raster, error) {
	if bands < 0 || height < 0 || width < 0 {
		return nil, fmt.Errorf("invalid raster shape (%d, %d, %d)", bands, height, width)
	}
	if len(data) != bands*height*width {
		return nil, fmt.Errorf("data length %d does not match shape (%d, %d, %d)",
			len(data), bands, height, width)
	}
	return &Raster{bands: bands, height: height, width: width, data: data}, nil
}

// FromNested copies a [band][row][column] nested slice into a raster.
// Every band must have the same number of rows and every row the same
// number of columns.
func FromNested(nested [][][]float64) (*Raster, error) {
	bands := len(nested)
	height, width := 0, 0
	if bands > 0 {
		height = len(nested[0])
		if height > 0 {
			width = len(nested[0][0])
		}
	}

	r, _ := New(bands, height, width)
	for b, band := range nested {
		if len(band) != height {
			return nil, fmt.Errorf("band %d has %d rows, want %d", b, len(band), height)
		}
		for y, row := range band {
			if len(row) != width {
				return nil, fmt.Errorf("band %d row %d has %d columns, want %d", b, y, len(row), width)
			}
			copy(r.data[r.offset(b, y, 0):], row)
		}
	}
	return r, nil
}

// Nested returns a [band][row][column] copy of the raster.
func (r *Raster) Nested() [][][]float64 {
	out := make([][][]float64, r.bands)
	for b := range out {
		out[b] = make([][]float64, r.height)
		for y := range out[b] {
			row := make([]float64, r.width)
			copy(row, r.data[r.offset(b, y, 0):])
			out[b][y] = row
		}
	}
	return out
}

// Shape returns the band, height and width dimensions.
func (r *Raster) Shape() (bands, height, width int) {
	return r.bands, r.height, r.width
}

// Data returns the underlying band-major slice.
func (r *Raster) Data() []float64 {
	return r.data
}

func (r *Raster) offset(b, y, x int) int {
	return (b*r.height+y)*r.width + x
}

// At returns the value of band b at (x, y).
func (r *Raster) At(b, x, y int) float64 {
	return r.data[r.offset(b, y, x)]
}

// Set stores v in band b at (x, y).
func (r *Raster) Set(b, x, y int, v float64) {
	r.data[r.offset(b, y, x)] = v
}

// Pixel returns the first three bands at (x, y) as a Triple.
func (r *Raster) Pixel(x, y int) colorspace.Triple {
	plane := r.height * r.width
	i := y*r.width + x
	return colorspace.Triple{r.data[i], r.data[plane+i], r.data[2*plane+i]}
}

// SetPixel stores t in the first three bands at (x, y).
func (r *Raster) SetPixel(x, y int, t colorspace.Triple) {
	plane := r.height * r.width
	i := y*r.width + x
	r.data[i] = t[0]
	r.data[plane+i] = t[1]
	r.data[2*plane+i] = t[2]
}

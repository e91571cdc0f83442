package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// FromImage converts an in-memory image into a 3×H×W RGB raster in 0-1.
// Alpha is dropped; the color values are the image's non-premultiplied
// 8-bit channels.
func FromImage(img image.Image) *Raster {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	r, _ := New(3, h, w)
	plane := w * h
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < w; x++ {
			i := y*w + x
			p := row[x*4 : x*4+3]
			r.data[i] = float64(p[0]) / 255
			r.data[plane+i] = float64(p[1]) / 255
			r.data[2*plane+i] = float64(p[2]) / 255
		}
	}
	return r
}

// ToImage converts a 3-band raster in 0-1 to an opaque NRGBA image.
// Values outside 0-1 are clamped.
func ToImage(r *Raster) (*image.NRGBA, error) {
	if err := checkShape(r); err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	plane := r.width * r.height
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			i := y*r.width + x
			o := y*img.Stride + x*4
			img.Pix[o] = uint8(scaleClamp(r.data[i], 255))
			img.Pix[o+1] = uint8(scaleClamp(r.data[plane+i], 255))
			img.Pix[o+2] = uint8(scaleClamp(r.data[2*plane+i], 255))
			img.Pix[o+3] = 255
		}
	}
	return img, nil
}

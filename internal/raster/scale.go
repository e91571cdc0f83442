package raster

import "math"

// FromUint8 scales 8-bit samples to 0-1.
func FromUint8(data []uint8, bands, height, width int) (*Raster, error) {
	f := make([]float64, len(data))
	for i, v := range data {
		f[i] = float64(v) / math.MaxUint8
	}
	return FromSlice(f, bands, height, width)
}

// FromUint16 scales 16-bit samples to 0-1.
func FromUint16(data []uint16, bands, height, width int) (*Raster, error) {
	f := make([]float64, len(data))
	for i, v := range data {
		f[i] = float64(v) / math.MaxUint16
	}
	return FromSlice(f, bands, height, width)
}

// Uint8 scales the raster from 0-1 to 0-255. Values are rounded and
// clamped, so FromUint8 followed by Uint8 returns the original samples.
func (r *Raster) Uint8() []uint8 {
	out := make([]uint8, len(r.data))
	for i, v := range r.data {
		out[i] = uint8(scaleClamp(v, math.MaxUint8))
	}
	return out
}

// Uint16 scales the raster from 0-1 to 0-65535, rounding and clamping.
func (r *Raster) Uint16() []uint16 {
	out := make([]uint16, len(r.data))
	for i, v := range r.data {
		out[i] = uint16(scaleClamp(v, math.MaxUint16))
	}
	return out
}

func scaleClamp(v, top float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Round(math.Max(0, math.Min(1, v)) * top)
}

// Package raster applies color conversions to every pixel of a 3×H×W array.
//
// A Raster stores its values band-major: band 0 holds the first channel of
// every pixel, band 1 the second and band 2 the third. ConvertBulk and
// SaturateBulk require exactly three bands and fail with ErrInvalidShape
// otherwise, before any output is allocated.
//
// # Parallelism
//
// Pixels are independent, so Map splits the rows across goroutines. Each
// output cell is written once from its own input pixel; the result is the
// same as a sequential loop, bit for bit.
//
// # Integer Samples
//
// FromUint8 and FromUint16 scale integer samples to 0-1; Uint8 and Uint16
// scale back with rounding so the round trip is exact. FromImage and ToImage
// bridge to image.Image values held in memory.
package raster

// Package tga
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Truevision TGA decoder: color-mapped, truecolor, and grayscale images at
// 8, 15, 16, 24, and 32 bits per pixel, uncompressed or run-length encoded.
// Pixel conversion and origin handling run through the parallel range
// engine, one row per element. TGA carries no leading magic bytes, so the
// package exposes Decode/DecodeConfig directly instead of registering with
// image.RegisterFormat.
package tga

// Package imageio encodes a renderer.Image to disk, choosing between
// gamma-corrected low dynamic range formats and linear high dynamic
// range output based on the destination file's extension.
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/arnholt/sahtrace/pkg/renderer"
)

// Gamma is the gamma value applied to low dynamic range output, matching
// the sRGB-ish 2.2 convention used throughout the example pack.
const Gamma = 2.2

// IsHDR reports whether path's extension selects the linear HDR (PFM)
// output path rather than a gamma-corrected LDR one.
func IsHDR(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pfm")
}

// SupportedExt reports whether path's extension is one this package can
// encode at all.
func SupportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".pfm":
		return true
	default:
		return false
	}
}

// Write encodes img to path, dispatching on the file extension: LDR
// formats receive a gamma-corrected 8-bit-per-channel image, while .pfm
// receives the linear float32 samples untouched.
func Write(path string, img *renderer.Image) error {
	if IsHDR(path) {
		return writePFM(path, img)
	}
	return writeLDR(path, img)
}

func writeLDR(path string, img *renderer.Image) error {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.Average(x, y).GammaCorrect(Gamma)
			rgba.Set(x, y, color.NRGBA{
				R: to8(c.X), G: to8(c.Y), B: to8(c.Z), A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, rgba)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, rgba, &jpeg.Options{Quality: 95})
	case ".bmp":
		return bmp.Encode(f, rgba)
	default:
		return fmt.Errorf("imageio: unsupported extension %q", filepath.Ext(path))
	}
}

func to8(c float32) uint8 {
	v := int(c*255 + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func writePFM(path string, img *renderer.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer f.Close()
	return EncodePFM(f, img)
}

// EncodePFM writes img as a color Portable Float Map: an ASCII header
// ("PF", dimensions, a negative scale marking little-endian) followed by
// raw float32 triples, bottom row first. No OpenEXR or Radiance-HDR
// encoder appears anywhere in the retrieved example pack, so this
// minimal uncompressed container is implemented directly rather than
// reaching for a stdlib-only approximation of a format the pack doesn't
// otherwise touch.
func EncodePFM(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "PF\n%d %d\n-1.0\n", img.Width, img.Height); err != nil {
		return err
	}
	for y := img.Height - 1; y >= 0; y-- {
		for x := 0; x < img.Width; x++ {
			c := img.Average(x, y)
			if err := writeFloat32LE(bw, c.X); err != nil {
				return err
			}
			if err := writeFloat32LE(bw, c.Y); err != nil {
				return err
			}
			if err := writeFloat32LE(bw, c.Z); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeFloat32LE(w io.Writer, f float32) error {
	bits := math.Float32bits(f)
	var buf [4]byte
	buf[0] = byte(bits)
	buf[1] = byte(bits >> 8)
	buf[2] = byte(bits >> 16)
	buf[3] = byte(bits >> 24)
	_, err := w.Write(buf[:])
	return err
}

package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif" // gif decode support
	"image/jpeg"
	"image/png"
	"strings"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // webp decode support
)

// Side is the square thumbnail edge length
const Side = 64

// jpegQuality matches the catalog's display quality
const jpegQuality = 85

// Derive produces a 64x64 letterboxed thumbnail from the source image bytes.
// The source is composited over white (palette/alpha images included),
// scaled to fit while preserving aspect ratio, and centered on a white canvas.
// ext decides the output encoding: .png stays PNG, everything else is JPEG.
// Returns the encoded bytes and their content type.
func Derive(src []byte, ext string) ([]byte, string, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, Side, Side))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// fit within Side x Side preserving aspect
	sb := img.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if w <= 0 || h <= 0 {
		return nil, "", fmt.Errorf("empty image")
	}
	tw, th := Side, Side
	if w > h {
		th = h * Side / w
	} else if h > w {
		tw = w * Side / h
	}
	x := (Side - tw) / 2
	y := (Side - th) / 2
	target := image.Rect(x, y, x+tw, y+th)

	// draw over white so transparent regions letterbox cleanly
	xdraw.CatmullRom.Scale(canvas, target, img, sb, xdraw.Over, nil)

	var buf bytes.Buffer
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		if err := png.Encode(&buf, canvas); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	default:
		if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, "", fmt.Errorf("encode jpeg: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	}
}

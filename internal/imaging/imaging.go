package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxDimension is the maximum width or height sent to the image host.
const MaxDimension = 1024

// JPEGQuality is the compression quality for re-encoded output.
const JPEGQuality = 85

// AllowedMIME lists the accepted listing-photo MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Sniff detects the MIME type from the bytes themselves; client-supplied
// headers and extensions are not trusted.
func Sniff(data []byte) string {
	return http.DetectContentType(data)
}

// Normalize validates the format by sniffing bytes and downscales images
// larger than MaxDimension, re-encoding them as JPEG. Images already within
// bounds pass through untouched so animated GIFs keep their frames.
func Normalize(data []byte) ([]byte, string, error) {
	detected := Sniff(data)
	if !AllowedMIME[detected] {
		return nil, "", fmt.Errorf("unsupported image format: %s", detected)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || (cfg.Width <= MaxDimension && cfg.Height <= MaxDimension) {
		return data, detected, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, detected, nil
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, "", fmt.Errorf("encoding JPEG: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

// downscale resizes img so its longest side is at most maxDim, preserving
// aspect ratio.
func downscale(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	var nw, nh int
	if w > h {
		nw = maxDim
		nh = h * maxDim / w
	} else {
		nh = maxDim
		nw = w * maxDim / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

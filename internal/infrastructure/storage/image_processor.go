package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

type ImageProcessor struct {
	MaxSize  int64 // bytes
	MaxWidth int   // long edge limit, no upscaling
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{
		MaxSize:  5 * 1024 * 1024, // 5MB
		MaxWidth: 800,
	}
}

// ValidateImage checks size and that the payload decodes as an image.
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png", "gif":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed", format)
	}
}

// Process constrains the long edge to MaxWidth (aspect preserved,
// never upscaled) and re-encodes as JPEG quality 90.
func (p *ImageProcessor) Process(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.MaxWidth || bounds.Dy() > p.MaxWidth {
		img = imaging.Fit(img, p.MaxWidth, p.MaxWidth, imaging.Lanczos)
	}

	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("cannot encode image: %w", err)
	}
	return b.Bytes(), nil
}

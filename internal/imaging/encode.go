package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// EncodeResult contains an encoded output image.
type EncodeResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	OutputPath  string `json:"output_path,omitempty"`
}

// Encode returns img as a base64 PNG and, if outputPath is non-empty, also
// writes it to disk. The file format is chosen from the output extension
// (PNG, JPEG, GIF, TIFF or BMP).
func Encode(img image.Image, outputPath string) (*EncodeResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	if outputPath != "" {
		if err := Save(img, outputPath); err != nil {
			return nil, err
		}
	}

	return &EncodeResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		OutputPath:  outputPath,
	}, nil
}

// Save writes img to path in the format implied by its extension.
func Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("unsupported output format for %s: %w", path, err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

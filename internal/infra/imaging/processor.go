// Package imaging implements photo validation and optimization for place uploads.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder

	_ "golang.org/x/image/webp" // register WEBP decoder

	"github.com/pkg/errors"

	"placehub/config"
	domainerrors "placehub/internal/domain/errors"
	"placehub/internal/domain/service"
)

var allowedFormats = map[string]struct{}{
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// processor is a concrete implementation of the ImageProcessor interface
// built on the standard image decoders.
type processor struct {
	maxSizeBytes int64
	maxWidth     int
	maxHeight    int
	jpegQuality  int
}

// NewProcessor is the constructor for processor.
func NewProcessor(cfg *config.Config) service.ImageProcessor {
	photo := cfg.Photo
	if photo == nil {
		photo = &config.PhotoConfig{
			MaxSizeBytes: 5 * 1024 * 1024,
			MaxWidth:     2048,
			MaxHeight:    2048,
			JPEGQuality:  85,
		}
	}

	return &processor{
		maxSizeBytes: photo.MaxSizeBytes,
		maxWidth:     photo.MaxWidth,
		maxHeight:    photo.MaxHeight,
		jpegQuality:  photo.JPEGQuality,
	}
}

// Validate rejects uploads that break the size, format or dimension rules.
func (p *processor) Validate(photo *service.PhotoUpload) error {
	if photo == nil || len(photo.Data) == 0 {
		return domainerrors.ErrInvalidPhoto.WithDetails("photo file is empty")
	}

	if int64(len(photo.Data)) > p.maxSizeBytes {
		return domainerrors.ErrInvalidPhoto.WithDetails(
			fmt.Sprintf("the file size must not exceed %dMB", p.maxSizeBytes/(1024*1024)))
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(photo.Data))
	if err != nil {
		return domainerrors.ErrInvalidPhoto.WithDetails("incorrect image file: " + err.Error())
	}
	if _, ok := allowedFormats[format]; !ok {
		return domainerrors.ErrInvalidPhoto.WithDetails("supported formats: JPEG, PNG, WEBP")
	}

	if cfg.Width > p.maxWidth || cfg.Height > p.maxHeight {
		return domainerrors.ErrInvalidPhoto.WithDetails(
			fmt.Sprintf("maximum image dimensions: %dx%d", p.maxWidth, p.maxHeight))
	}

	return nil
}

// Optimize re-encodes an accepted upload as JPEG.
func (p *processor) Optimize(photo *service.PhotoUpload) (*service.OptimizedPhoto, error) {
	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.jpegQuality}); err != nil {
		return nil, errors.Wrap(err, "failed to encode jpeg")
	}

	bounds := img.Bounds()

	return &service.OptimizedPhoto{
		Data:        buf.Bytes(),
		ContentType: "image/jpeg",
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}

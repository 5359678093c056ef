package preview

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/prasetyowira/qrgen/constant"
)

// Renderer scales images down to a fixed square thumbnail for display
type Renderer struct {
	size int
}

// NewRenderer creates a renderer producing size x size thumbnails
func NewRenderer(size int) (*Renderer, error) {
	if size <= 0 {
		return nil, errors.New(constant.ErrInvalidImageSize)
	}
	return &Renderer{size: size}, nil
}

// Size returns the thumbnail edge length in pixels
func (r *Renderer) Size() int {
	return r.size
}

// Thumbnail decodes an image, resamples it to the thumbnail size with a
// Lanczos filter and returns it PNG-encoded.
func (r *Renderer) Thumbnail(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	thumb := imaging.Resize(img, r.size, r.size, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeSquare(t *testing.T, size int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNewRenderer_InvalidSize(t *testing.T) {
	r, err := NewRenderer(-1)

	assert.Nil(t, r)
	assert.EqualError(t, err, constant.ErrInvalidImageSize)
}

func TestRenderer_Thumbnail(t *testing.T) {
	// Arrange
	r, err := NewRenderer(180)
	require.NoError(t, err)
	source := encodeSquare(t, 290)

	// Act
	data, err := r.Thumbnail(source)

	// Assert
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 180, img.Bounds().Dx())
	assert.Equal(t, 180, img.Bounds().Dy())
	assert.Equal(t, 180, r.Size())
}

func TestRenderer_ThumbnailUpscales(t *testing.T) {
	r, err := NewRenderer(180)
	require.NoError(t, err)

	data, err := r.Thumbnail(encodeSquare(t, 29))

	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 180, 180), img.Bounds())
}

func TestRenderer_ThumbnailInvalidImage(t *testing.T) {
	r, err := NewRenderer(180)
	require.NoError(t, err)

	data, err := r.Thumbnail([]byte("not an image"))

	assert.Nil(t, data)
	assert.Error(t, err)
}

package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
)

func encodeTestImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	return cfg.Width, cfg.Height
}

func TestCropProducesExactDimensions(t *testing.T) {
	src := encodeTestImage(t, 200, 120)

	out, err := Crop(src, Rect{X: 10, Y: 20, Width: 100, Height: 50})
	require.NoError(t, err)
	w, h := decodeDims(t, out)
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
}

func TestCropFloorsFractionalRect(t *testing.T) {
	src := encodeTestImage(t, 200, 120)

	out, err := Crop(src, Rect{X: 10.9, Y: 20.2, Width: 100.7, Height: 50.5})
	require.NoError(t, err)
	w, h := decodeDims(t, out)
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
}

func TestCropCoercesTinyRectToOnePixel(t *testing.T) {
	src := encodeTestImage(t, 40, 40)

	out, err := Crop(src, Rect{X: 5, Y: 5, Width: 0.4, Height: 0})
	require.NoError(t, err)
	w, h := decodeDims(t, out)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestCropUndecodableSource(t *testing.T) {
	_, err := Crop([]byte("not an image"), Rect{Width: 10, Height: 10})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrImageDecode.Code, appErr.Code)
}

func TestCropRegionOutsideImage(t *testing.T) {
	src := encodeTestImage(t, 40, 40)

	_, err := Crop(src, Rect{X: 500, Y: 500, Width: 10, Height: 10})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrRenderSurface.Code, appErr.Code)
}

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
)

// Rect is a crop rectangle in source-pixel coordinates. Fractional values
// are floored; width and height are coerced to at least one pixel.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) bounds() image.Rectangle {
	x := int(math.Floor(r.X))
	y := int(math.Floor(r.Y))
	w := int(math.Floor(r.Width))
	h := int(math.Floor(r.Height))
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return image.Rect(x, y, x+w, y+h)
}

const jpegQuality = 90

// Crop decodes the source image, extracts the rectangle and re-encodes it
// as JPEG. The output is exactly floor(width) x floor(height) pixels. A
// failure aborts only this crop; the caller keeps the original payload.
func Crop(src []byte, rect Rect) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrImageDecode.Code, appErrors.ErrImageDecode.Status, "image could not be decoded")
	}

	region := rect.bounds()
	if !region.Overlaps(img.Bounds()) {
		return nil, appErrors.Clone(appErrors.ErrRenderSurface, "crop region is outside the image")
	}

	cropped := imaging.Crop(img, region)
	// Crop clamps to the source bounds; pad back out so callers always get
	// the dimensions they asked for.
	if cropped.Bounds().Dx() != region.Dx() || cropped.Bounds().Dy() != region.Dy() {
		canvas := imaging.New(region.Dx(), region.Dy(), color.NRGBA{})
		cropped = imaging.Paste(canvas, cropped, image.Pt(0, 0))
	}

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, cropped, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRenderSurface.Code, appErrors.ErrRenderSurface.Status, "cropped image could not be encoded")
	}
	return buf.Bytes(), nil
}

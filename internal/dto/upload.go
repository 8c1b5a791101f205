package dto

import "github.com/sunrise-school/cms-api/internal/upload"

// CropParams describes an optional crop applied before upload. All four
// fields must be supplied together; fractional pixel values are accepted
// and floored by the transform.
type CropParams struct {
	X      float64 `form:"crop_x"`
	Y      float64 `form:"crop_y"`
	Width  float64 `form:"crop_width"`
	Height float64 `form:"crop_height"`
}

// Provided reports whether the request actually carried crop dimensions.
func (c CropParams) Provided() bool {
	return c.Width > 0 && c.Height > 0
}

// UploadResult reports the settled state of one file in a batch.
type UploadResult struct {
	Name     string        `json:"name"`
	Status   upload.Status `json:"status"`
	Progress int           `json:"progress"`
	URL      string        `json:"url,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// UploadBatchResponse is returned after all files in a batch settle.
type UploadBatchResponse struct {
	Results   []UploadResult `json:"results"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}

package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunrise-school/cms-api/internal/dto"
	"github.com/sunrise-school/cms-api/internal/service"
	"github.com/sunrise-school/cms-api/pkg/config"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
	"github.com/sunrise-school/cms-api/pkg/response"
)

// UploadHandler accepts multipart image batches for the admin panel.
type UploadHandler struct {
	service *service.MediaService
	cfg     config.UploadsConfig
}

// NewUploadHandler constructs an upload handler.
func NewUploadHandler(svc *service.MediaService, cfg config.UploadsConfig) *UploadHandler {
	return &UploadHandler{service: svc, cfg: cfg}
}

// Upload godoc
// @Summary Upload one or more images, optionally cropped first
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param files formData file true "Image files"
// @Param crop_x formData number false "Crop origin X"
// @Param crop_y formData number false "Crop origin Y"
// @Param crop_width formData number false "Crop width"
// @Param crop_height formData number false "Crop height"
// @Success 200 {object} response.Envelope
// @Router /admin/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid multipart form"))
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "no files submitted"))
		return
	}
	if h.cfg.MaxBatchSize > 0 && len(files) > h.cfg.MaxBatchSize {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("at most %d files per batch", h.cfg.MaxBatchSize)))
		return
	}

	var crop dto.CropParams
	if err := c.ShouldBind(&crop); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid crop parameters"))
		return
	}

	staged := make([]service.StagedFile, 0, len(files))
	for _, fh := range files {
		if h.cfg.MaxFileSizeBytes > 0 && fh.Size > h.cfg.MaxFileSizeBytes {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s exceeds the size limit", fh.Filename)))
			return
		}
		contentType := fh.Header.Get("Content-Type")
		if !h.mimeAllowed(contentType) {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s has unsupported type %s", fh.Filename, contentType)))
			return
		}
		data, err := readMultipartFile(fh)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "failed to read uploaded file"))
			return
		}
		staged = append(staged, service.StagedFile{Name: fh.Filename, ContentType: contentType, Data: data})
	}

	resp, err := h.service.UploadBatch(c.Request.Context(), staged, crop)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

func (h *UploadHandler) mimeAllowed(contentType string) bool {
	if len(h.cfg.AllowedMIMEs) == 0 {
		return true
	}
	for _, m := range h.cfg.AllowedMIMEs {
		if m == contentType {
			return true
		}
	}
	return false
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

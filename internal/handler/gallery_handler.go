package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunrise-school/cms-api/internal/dto"
	"github.com/sunrise-school/cms-api/internal/service"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
	"github.com/sunrise-school/cms-api/pkg/response"
)

// GalleryHandler handles admin gallery endpoints.
type GalleryHandler struct {
	service *service.GalleryService
}

// NewGalleryHandler constructs a gallery handler.
func NewGalleryHandler(svc *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: svc}
}

// List godoc
// @Summary List gallery images in display order
// @Tags Gallery
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Envelope
// @Router /admin/gallery-images [get]
func (h *GalleryHandler) List(c *gin.Context) {
	images, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, images, nil)
}

// Create godoc
// @Summary Add a gallery image at the end of the grid
// @Tags Gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateGalleryImageRequest true "Gallery image payload"
// @Success 201 {object} response.Envelope
// @Router /admin/gallery-images [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	var req dto.CreateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	images, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, images)
}

// Update godoc
// @Summary Update a gallery image
// @Tags Gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery image ID"
// @Param payload body dto.UpdateGalleryImageRequest true "Gallery image payload"
// @Success 200 {object} response.Envelope
// @Router /admin/gallery-images/{id} [put]
func (h *GalleryHandler) Update(c *gin.Context) {
	var req dto.UpdateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	images, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, images, nil)
}

// Delete godoc
// @Summary Delete a gallery image
// @Tags Gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery image ID"
// @Success 200 {object} response.Envelope
// @Router /admin/gallery-images/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	images, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, images, nil)
}

// Reorder godoc
// @Summary Move a gallery image to a new position
// @Tags Gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ReorderRequest true "Positions"
// @Success 200 {object} response.Envelope
// @Router /admin/gallery-images/reorder [put]
func (h *GalleryHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	images, err := h.service.Reorder(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, images, nil)
}

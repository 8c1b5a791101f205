package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunrise-school/cms-api/internal/dto"
	"github.com/sunrise-school/cms-api/internal/service"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
	"github.com/sunrise-school/cms-api/pkg/response"
)

// HeroHandler handles admin hero carousel endpoints. Every mutation
// responds with the complete refreshed collection.
type HeroHandler struct {
	service *service.HeroService
}

// NewHeroHandler constructs a hero handler.
func NewHeroHandler(svc *service.HeroService) *HeroHandler {
	return &HeroHandler{service: svc}
}

// List godoc
// @Summary List hero images in display order
// @Tags Hero
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/hero-images [get]
func (h *HeroHandler) List(c *gin.Context) {
	images, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, images, nil)
}

// Create godoc
// @Summary Add a hero image at the end of the carousel
// @Tags Hero
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateHeroImageRequest true "Hero image payload"
// @Success 201 {object} response.Envelope
// @Router /admin/hero-images [post]
func (h *HeroHandler) Create(c *gin.Context) {
	var req dto.CreateHeroImageRequest
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
// @Summary Update a hero image
// @Tags Hero
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hero image ID"
// @Param payload body dto.UpdateHeroImageRequest true "Hero image payload"
// @Success 200 {object} response.Envelope
// @Router /admin/hero-images/{id} [put]
func (h *HeroHandler) Update(c *gin.Context) {
	var req dto.UpdateHeroImageRequest
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
// @Summary Delete a hero image
// @Tags Hero
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hero image ID"
// @Success 200 {object} response.Envelope
// @Router /admin/hero-images/{id} [delete]
func (h *HeroHandler) Delete(c *gin.Context) {
	images, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, images, nil)
}

// Reorder godoc
// @Summary Move a hero image to a new position
// @Tags Hero
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ReorderRequest true "Positions"
// @Success 200 {object} response.Envelope
// @Router /admin/hero-images/reorder [put]
func (h *HeroHandler) Reorder(c *gin.Context) {
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

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunrise-school/cms-api/internal/service"
	"github.com/sunrise-school/cms-api/pkg/response"
)

// PublicHandler serves the read-only site endpoints. No authentication
// is required; only active content is returned.
type PublicHandler struct {
	service *service.PublicContentService
}

// NewPublicHandler constructs a public content handler.
func NewPublicHandler(svc *service.PublicContentService) *PublicHandler {
	return &PublicHandler{service: svc}
}

// HeroImages godoc
// @Summary List active hero images for the landing page
// @Tags Site
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /site/hero-images [get]
func (h *PublicHandler) HeroImages(c *gin.Context) {
	payload, err := h.service.HeroImages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, json.RawMessage(payload), nil)
}

// TeamMembers godoc
// @Summary List active team members
// @Tags Site
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /site/team-members [get]
func (h *PublicHandler) TeamMembers(c *gin.Context) {
	payload, err := h.service.TeamMembers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, json.RawMessage(payload), nil)
}

// GalleryImages godoc
// @Summary List active gallery images
// @Tags Site
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Envelope
// @Router /site/gallery-images [get]
func (h *PublicHandler) GalleryImages(c *gin.Context) {
	payload, err := h.service.GalleryImages(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, json.RawMessage(payload), nil)
}

// Notices godoc
// @Summary List active notices
// @Tags Site
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /site/notices [get]
func (h *PublicHandler) Notices(c *gin.Context) {
	payload, err := h.service.Notices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, json.RawMessage(payload), nil)
}

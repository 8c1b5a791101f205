package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunrise-school/cms-api/internal/dto"
	"github.com/sunrise-school/cms-api/internal/service"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
	"github.com/sunrise-school/cms-api/pkg/response"
)

// NoticeHandler handles admin notice board endpoints.
type NoticeHandler struct {
	service *service.NoticeService
}

// NewNoticeHandler constructs a notice handler.
func NewNoticeHandler(svc *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{service: svc}
}

// List godoc
// @Summary List notices in display order
// @Tags Notices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/notices [get]
func (h *NoticeHandler) List(c *gin.Context) {
	notices, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notices, nil)
}

// Create godoc
// @Summary Add a notice at the end of the board
// @Tags Notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateNoticeRequest true "Notice payload"
// @Success 201 {object} response.Envelope
// @Router /admin/notices [post]
func (h *NoticeHandler) Create(c *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	notices, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, notices)
}

// Update godoc
// @Summary Update a notice
// @Tags Notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Param payload body dto.UpdateNoticeRequest true "Notice payload"
// @Success 200 {object} response.Envelope
// @Router /admin/notices/{id} [put]
func (h *NoticeHandler) Update(c *gin.Context) {
	var req dto.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	notices, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notices, nil)
}

// Delete godoc
// @Summary Delete a notice
// @Tags Notices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Success 200 {object} response.Envelope
// @Router /admin/notices/{id} [delete]
func (h *NoticeHandler) Delete(c *gin.Context) {
	notices, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notices, nil)
}

// Reorder godoc
// @Summary Move a notice to a new position
// @Tags Notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ReorderRequest true "Positions"
// @Success 200 {object} response.Envelope
// @Router /admin/notices/reorder [put]
func (h *NoticeHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	notices, err := h.service.Reorder(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notices, nil)
}

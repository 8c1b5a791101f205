package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunrise-school/cms-api/internal/dto"
	"github.com/sunrise-school/cms-api/internal/service"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
	"github.com/sunrise-school/cms-api/pkg/response"
)

// TeamHandler handles admin team member endpoints.
type TeamHandler struct {
	service *service.TeamService
}

// NewTeamHandler constructs a team handler.
func NewTeamHandler(svc *service.TeamService) *TeamHandler {
	return &TeamHandler{service: svc}
}

// List godoc
// @Summary List team members in display order
// @Tags Team
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/team-members [get]
func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, members, nil)
}

// Create godoc
// @Summary Add a team member at the end of the list
// @Tags Team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateTeamMemberRequest true "Team member payload"
// @Success 201 {object} response.Envelope
// @Router /admin/team-members [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	members, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, members)
}

// Update godoc
// @Summary Update a team member
// @Tags Team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team member ID"
// @Param payload body dto.UpdateTeamMemberRequest true "Team member payload"
// @Success 200 {object} response.Envelope
// @Router /admin/team-members/{id} [put]
func (h *TeamHandler) Update(c *gin.Context) {
	var req dto.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	members, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, members, nil)
}

// Delete godoc
// @Summary Delete a team member
// @Tags Team
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team member ID"
// @Success 200 {object} response.Envelope
// @Router /admin/team-members/{id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	members, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, members, nil)
}

// Reorder godoc
// @Summary Move a team member to a new position
// @Tags Team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ReorderRequest true "Positions"
// @Success 200 {object} response.Envelope
// @Router /admin/team-members/reorder [put]
func (h *TeamHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	members, err := h.service.Reorder(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, members, nil)
}

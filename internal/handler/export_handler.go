package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunrise-school/cms-api/internal/service"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
	"github.com/sunrise-school/cms-api/pkg/response"
)

// ExportHandler serves CSV and PDF downloads of admin content.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Notices godoc
// @Summary Download the notice board as CSV or PDF
// @Tags Exports
// @Produce text/csv
// @Security BearerAuth
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /admin/exports/notices [get]
func (h *ExportHandler) Notices(c *gin.Context) {
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		out, err := h.service.NoticesCSV(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		sendAttachment(c, "notices.csv", "text/csv", out)
	case "pdf":
		out, err := h.service.NoticesPDF(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		sendAttachment(c, "notices.pdf", "application/pdf", out)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}

// Team godoc
// @Summary Download the team roster as CSV or PDF
// @Tags Exports
// @Produce text/csv
// @Security BearerAuth
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /admin/exports/team [get]
func (h *ExportHandler) Team(c *gin.Context) {
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		out, err := h.service.TeamCSV(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		sendAttachment(c, "team.csv", "text/csv", out)
	case "pdf":
		out, err := h.service.TeamPDF(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		sendAttachment(c, "team.pdf", "application/pdf", out)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}

func sendAttachment(c *gin.Context, filename, mimeType string, payload []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, mimeType, payload)
}

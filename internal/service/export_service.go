package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/sunrise-school/cms-api/internal/models"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
	"github.com/sunrise-school/cms-api/pkg/export"
)

type exportNoticeLister interface {
	List(ctx context.Context, includeInactive bool) ([]models.Notice, error)
}

type exportTeamLister interface {
	List(ctx context.Context, includeInactive bool) ([]models.TeamMember, error)
}

// ExportService renders notice board and staff listings as CSV or PDF
// for offline distribution.
type ExportService struct {
	notices exportNoticeLister
	team    exportTeamLister
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(notices exportNoticeLister, team exportTeamLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		notices: notices,
		team:    team,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
	}
}

// NoticesCSV renders all notices as CSV.
func (s *ExportService) NoticesCSV(ctx context.Context) ([]byte, error) {
	data, err := s.noticeDataset(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.csv.Render(*data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render notices csv")
	}
	return out, nil
}

// NoticesPDF renders all notices as a tabular PDF.
func (s *ExportService) NoticesPDF(ctx context.Context) ([]byte, error) {
	data, err := s.noticeDataset(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.pdf.Render(*data, "Notice Board")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render notices pdf")
	}
	return out, nil
}

// TeamCSV renders all team members as CSV.
func (s *ExportService) TeamCSV(ctx context.Context) ([]byte, error) {
	data, err := s.teamDataset(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.csv.Render(*data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render team csv")
	}
	return out, nil
}

// TeamPDF renders all team members as a tabular PDF.
func (s *ExportService) TeamPDF(ctx context.Context) ([]byte, error) {
	data, err := s.teamDataset(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.pdf.Render(*data, "Our Team")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render team pdf")
	}
	return out, nil
}

func (s *ExportService) noticeDataset(ctx context.Context) (*export.Dataset, error) {
	notices, err := s.notices.List(ctx, true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notices")
	}
	data := &export.Dataset{Headers: []string{"Order", "Date", "Title", "Content", "Active"}}
	for _, n := range notices {
		data.Rows = append(data.Rows, map[string]string{
			"Order":   strconv.Itoa(n.DisplayOrder),
			"Date":    n.Date,
			"Title":   n.Title,
			"Content": n.Content,
			"Active":  strconv.FormatBool(n.IsActive),
		})
	}
	return data, nil
}

func (s *ExportService) teamDataset(ctx context.Context) (*export.Dataset, error) {
	members, err := s.team.List(ctx, true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list team members")
	}
	data := &export.Dataset{Headers: []string{"Order", "Name", "Position", "Active"}}
	for _, m := range members {
		data.Rows = append(data.Rows, map[string]string{
			"Order":    strconv.Itoa(m.DisplayOrder),
			"Name":     m.Name,
			"Position": m.Position,
			"Active":   strconv.FormatBool(m.IsActive),
		})
	}
	return data, nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sunrise-school/cms-api/internal/dto"
	"github.com/sunrise-school/cms-api/internal/models"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
)

type mockNoticeRepo struct {
	notices     []models.Notice
	replacedIDs []string
	listCalls   int
	deleteCalls int
	createErr   error
	replaceErr  error
}

func (m *mockNoticeRepo) List(_ context.Context, _ bool) ([]models.Notice, error) {
	m.listCalls++
	return m.notices, nil
}

func (m *mockNoticeRepo) GetByID(_ context.Context, id string) (*models.Notice, error) {
	for i := range m.notices {
		if m.notices[i].ID == id {
			n := m.notices[i]
			return &n, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockNoticeRepo) Create(_ context.Context, notice *models.Notice) error {
	if m.createErr != nil {
		return m.createErr
	}
	if notice.ID == "" {
		notice.ID = "generated"
	}
	m.notices = append(m.notices, *notice)
	return nil
}

func (m *mockNoticeRepo) Update(_ context.Context, notice *models.Notice) error {
	for i := range m.notices {
		if m.notices[i].ID == notice.ID {
			m.notices[i] = *notice
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *mockNoticeRepo) Delete(_ context.Context, id string) error {
	m.deleteCalls++
	for i := range m.notices {
		if m.notices[i].ID == id {
			m.notices = append(m.notices[:i], m.notices[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockNoticeRepo) Count(_ context.Context) (int, error) {
	return len(m.notices), nil
}

func (m *mockNoticeRepo) ReplaceDisplayOrder(_ context.Context, ids []string) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replacedIDs = ids
	byID := make(map[string]models.Notice, len(m.notices))
	for _, n := range m.notices {
		byID[n.ID] = n
	}
	for i, id := range ids {
		n := byID[id]
		n.DisplayOrder = i
		m.notices[i] = n
	}
	return nil
}

type recordingInvalidator struct {
	tabs []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, tab string) {
	r.tabs = append(r.tabs, tab)
}

func seedNotices() []models.Notice {
	return []models.Notice{
		{ID: "n1", Title: "Exam schedule", Date: "2026-01-10", DisplayOrder: 0, IsActive: true},
		{ID: "n2", Title: "Sports day", Date: "2026-02-05", DisplayOrder: 1, IsActive: true},
		{ID: "n3", Title: "Holiday", Date: "2026-03-01", DisplayOrder: 2, IsActive: true},
	}
}

func TestNoticeCreateAppendsAtEnd(t *testing.T) {
	repo := &mockNoticeRepo{notices: seedNotices()}
	cache := &recordingInvalidator{}
	svc := NewNoticeService(repo, cache, nil, zap.NewNop())

	list, err := svc.Create(context.Background(), dto.CreateNoticeRequest{
		Title: "Admissions open",
		Date:  "2026-04-01",
	})
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, 3, list[3].DisplayOrder)
	assert.True(t, list[3].IsActive)
	assert.Equal(t, []string{"notices"}, cache.tabs)
}

func TestNoticeCreateRejectsBadDate(t *testing.T) {
	repo := &mockNoticeRepo{}
	svc := NewNoticeService(repo, nil, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), dto.CreateNoticeRequest{Title: "x", Date: "01/04/2026"})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, repo.notices)
}

func TestNoticeWriteRejectionsMapToRemoteWrite(t *testing.T) {
	repo := &mockNoticeRepo{createErr: errors.New("connection reset")}
	svc := NewNoticeService(repo, nil, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), dto.CreateNoticeRequest{Title: "x", Date: "2026-04-01"})
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrRemoteWrite.Code, appErr.Code)
	assert.Equal(t, appErrors.ErrRemoteWrite.Status, appErr.Status)

	repo = &mockNoticeRepo{notices: seedNotices(), replaceErr: errors.New("deadlock detected")}
	svc = NewNoticeService(repo, nil, nil, zap.NewNop())

	_, err = svc.Reorder(context.Background(), dto.ReorderRequest{From: 0, To: 2})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrRemoteWrite.Code, appErr.Code)
}

func TestNoticeReorderRenumbersDensely(t *testing.T) {
	repo := &mockNoticeRepo{notices: seedNotices()}
	svc := NewNoticeService(repo, nil, nil, zap.NewNop())

	list, err := svc.Reorder(context.Background(), dto.ReorderRequest{From: 2, To: 0})
	require.NoError(t, err)
	require.Equal(t, []string{"n3", "n1", "n2"}, repo.replacedIDs)
	require.Len(t, list, 3)
	for i, n := range list {
		assert.Equal(t, i, n.DisplayOrder, "orders must be dense after reorder")
	}
	assert.Equal(t, "n3", list[0].ID)
}

func TestNoticeReorderOutOfRangeIsNoOp(t *testing.T) {
	repo := &mockNoticeRepo{notices: seedNotices()}
	svc := NewNoticeService(repo, nil, nil, zap.NewNop())

	list, err := svc.Reorder(context.Background(), dto.ReorderRequest{From: 0, To: 9})
	require.NoError(t, err)
	assert.Nil(t, repo.replacedIDs, "no order write should happen")
	assert.Equal(t, "n1", list[0].ID)
}

func TestNoticeDeleteKeepsGaps(t *testing.T) {
	repo := &mockNoticeRepo{notices: seedNotices()}
	svc := NewNoticeService(repo, nil, nil, zap.NewNop())

	list, err := svc.Delete(context.Background(), "n2")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Nil(t, repo.replacedIDs, "delete must not renumber survivors")
	assert.Equal(t, 0, list[0].DisplayOrder)
	assert.Equal(t, 2, list[1].DisplayOrder, "gap left by the deleted row persists")
}

func TestNoticeUpdateNotFound(t *testing.T) {
	repo := &mockNoticeRepo{notices: seedNotices()}
	svc := NewNoticeService(repo, nil, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), "missing", dto.UpdateNoticeRequest{Title: "x", Date: "2026-01-01"})
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestNoticeUpdateTogglesActive(t *testing.T) {
	repo := &mockNoticeRepo{notices: seedNotices()}
	svc := NewNoticeService(repo, nil, nil, zap.NewNop())

	inactive := false
	list, err := svc.Update(context.Background(), "n1", dto.UpdateNoticeRequest{
		Title:    "Exam schedule",
		Date:     "2026-01-10",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, list[0].IsActive)
}

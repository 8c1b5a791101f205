package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunrise-school/cms-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func noticeRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "title", "date", "content", "display_order", "is_active", "created_at", "updated_at"}).
		AddRow("n-1", "Exam Schedule", "2025-11-01", "", 0, true, now, now).
		AddRow("n-2", "Sports Day", "2025-11-15", "All students attend.", 1, true, now, now)
}

func TestNoticeRepositoryListOrdersByDisplayOrder(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewNoticeRepository(db)
	mock.ExpectQuery("SELECT id, title, date, content, display_order, is_active, created_at, updated_at\nFROM notices WHERE is_active = TRUE ORDER BY display_order ASC").
		WillReturnRows(noticeRows())

	notices, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, notices, 2)
	assert.Equal(t, "Exam Schedule", notices[0].Title)
	assert.Equal(t, 1, notices[1].DisplayOrder)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoticeRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewNoticeRepository(db)
	mock.ExpectExec("INSERT INTO notices").
		WillReturnResult(sqlmock.NewResult(1, 1))

	notice := &models.Notice{Title: "Exam Schedule", Date: "2025-11-01", DisplayOrder: 2, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), notice))
	assert.NotEmpty(t, notice.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoticeRepositoryUpdateKeepsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewNoticeRepository(db)
	mock.ExpectExec("UPDATE notices SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	notice := &models.Notice{ID: "n-1", Title: "Exam Schedule", Date: "2025-11-01", Content: "updated", IsActive: true}
	require.NoError(t, repo.Update(context.Background(), notice))
	assert.Equal(t, "n-1", notice.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoticeRepositoryReplaceDisplayOrderRunsInTx(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewNoticeRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE notices SET display_order").
		WithArgs(0, sqlmock.AnyArg(), "n-3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE notices SET display_order").
		WithArgs(1, sqlmock.AnyArg(), "n-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE notices SET display_order").
		WithArgs(2, sqlmock.AnyArg(), "n-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceDisplayOrder(context.Background(), []string{"n-3", "n-1", "n-2"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoticeRepositoryDeleteDoesNotRenumber(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewNoticeRepository(db)
	mock.ExpectExec("DELETE FROM notices WHERE id").
		WithArgs("n-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "n-1"))
	// no further statements expected: gaps in display_order are kept
	require.NoError(t, mock.ExpectationsWereMet())
}

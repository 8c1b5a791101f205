package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sunrise-school/cms-api/internal/models"
)

// NoticeRepository provides persistence for notice-board entries.
type NoticeRepository struct {
	db *sqlx.DB
}

// NewNoticeRepository creates the repository.
func NewNoticeRepository(db *sqlx.DB) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// List returns notices ascending by display order.
func (r *NoticeRepository) List(ctx context.Context, includeInactive bool) ([]models.Notice, error) {
	query := `SELECT id, title, date, content, display_order, is_active, created_at, updated_at
FROM notices`
	if !includeInactive {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY display_order ASC"
	var notices []models.Notice
	if err := r.db.SelectContext(ctx, &notices, query); err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	return notices, nil
}

// GetByID returns a notice by identifier.
func (r *NoticeRepository) GetByID(ctx context.Context, id string) (*models.Notice, error) {
	const query = `SELECT id, title, date, content, display_order, is_active, created_at, updated_at
FROM notices WHERE id = $1`
	var notice models.Notice
	if err := r.db.GetContext(ctx, &notice, query, id); err != nil {
		return nil, err
	}
	return &notice, nil
}

// Create inserts a new notice.
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	if notice.ID == "" {
		notice.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	notice.CreatedAt = now
	notice.UpdatedAt = now
	const query = `INSERT INTO notices (id, title, date, content, display_order, is_active, created_at, updated_at)
VALUES (:id, :title, :date, :content, :display_order, :is_active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, notice); err != nil {
		return fmt.Errorf("create notice: %w", err)
	}
	return nil
}

// Update modifies an existing notice in place, keeping its id.
func (r *NoticeRepository) Update(ctx context.Context, notice *models.Notice) error {
	notice.UpdatedAt = time.Now().UTC()
	const query = `UPDATE notices SET title = :title, date = :date, content = :content,
is_active = :is_active, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, notice); err != nil {
		return fmt.Errorf("update notice: %w", err)
	}
	return nil
}

// Delete removes a notice row.
func (r *NoticeRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM notices WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete notice: %w", err)
	}
	return nil
}

// Count returns the number of notices.
func (r *NoticeRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM notices"); err != nil {
		return 0, fmt.Errorf("count notices: %w", err)
	}
	return count, nil
}

// ReplaceDisplayOrder persists a new visual order for the whole collection.
func (r *NoticeRepository) ReplaceDisplayOrder(ctx context.Context, ids []string) error {
	return replaceDisplayOrder(ctx, r.db, "notices", ids)
}

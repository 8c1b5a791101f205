package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sunrise-school/cms-api/internal/models"
)

// HeroRepository provides persistence for hero carousel images.
type HeroRepository struct {
	db *sqlx.DB
}

// NewHeroRepository creates the repository.
func NewHeroRepository(db *sqlx.DB) *HeroRepository {
	return &HeroRepository{db: db}
}

// List returns hero images ascending by display order. Inactive rows are
// included only when requested (admin views).
func (r *HeroRepository) List(ctx context.Context, includeInactive bool) ([]models.HeroImage, error) {
	query := `SELECT id, image_url, alt_text, display_order, is_active, created_at, updated_at
FROM hero_images`
	if !includeInactive {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY display_order ASC"
	var images []models.HeroImage
	if err := r.db.SelectContext(ctx, &images, query); err != nil {
		return nil, fmt.Errorf("list hero images: %w", err)
	}
	return images, nil
}

// GetByID returns a hero image by identifier.
func (r *HeroRepository) GetByID(ctx context.Context, id string) (*models.HeroImage, error) {
	const query = `SELECT id, image_url, alt_text, display_order, is_active, created_at, updated_at
FROM hero_images WHERE id = $1`
	var image models.HeroImage
	if err := r.db.GetContext(ctx, &image, query, id); err != nil {
		return nil, err
	}
	return &image, nil
}

// Create inserts a new hero image.
func (r *HeroRepository) Create(ctx context.Context, image *models.HeroImage) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	image.CreatedAt = now
	image.UpdatedAt = now
	const query = `INSERT INTO hero_images (id, image_url, alt_text, display_order, is_active, created_at, updated_at)
VALUES (:id, :image_url, :alt_text, :display_order, :is_active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, image); err != nil {
		return fmt.Errorf("create hero image: %w", err)
	}
	return nil
}

// Update modifies an existing hero image.
func (r *HeroRepository) Update(ctx context.Context, image *models.HeroImage) error {
	image.UpdatedAt = time.Now().UTC()
	const query = `UPDATE hero_images SET image_url = :image_url, alt_text = :alt_text, is_active = :is_active,
updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, image); err != nil {
		return fmt.Errorf("update hero image: %w", err)
	}
	return nil
}

// Delete removes a hero image row. Remaining display_order values are not
// renumbered and the stored object is not touched.
func (r *HeroRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM hero_images WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete hero image: %w", err)
	}
	return nil
}

// Count returns the number of hero images.
func (r *HeroRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM hero_images"); err != nil {
		return 0, fmt.Errorf("count hero images: %w", err)
	}
	return count, nil
}

// ReplaceDisplayOrder persists a new visual order for the whole collection.
func (r *HeroRepository) ReplaceDisplayOrder(ctx context.Context, ids []string) error {
	return replaceDisplayOrder(ctx, r.db, "hero_images", ids)
}

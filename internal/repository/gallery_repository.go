package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sunrise-school/cms-api/internal/models"
)

// GalleryRepository provides persistence for gallery images.
type GalleryRepository struct {
	db *sqlx.DB
}

// NewGalleryRepository creates the repository.
func NewGalleryRepository(db *sqlx.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// List returns gallery images ascending by display order, optionally
// restricted to one category.
func (r *GalleryRepository) List(ctx context.Context, category string, includeInactive bool) ([]models.GalleryImage, error) {
	query := `SELECT id, image_url, caption, caption_nepali, category, display_order, is_active, created_at, updated_at
FROM gallery_images`
	where := ""
	args := []interface{}{}
	if !includeInactive {
		where = " WHERE is_active = TRUE"
	}
	if category != "" {
		if where == "" {
			where = " WHERE category = $1"
		} else {
			where += " AND category = $1"
		}
		args = append(args, category)
	}
	query += where + " ORDER BY display_order ASC"
	var images []models.GalleryImage
	if err := r.db.SelectContext(ctx, &images, query, args...); err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	return images, nil
}

// GetByID returns a gallery image by identifier.
func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	const query = `SELECT id, image_url, caption, caption_nepali, category, display_order, is_active, created_at, updated_at
FROM gallery_images WHERE id = $1`
	var image models.GalleryImage
	if err := r.db.GetContext(ctx, &image, query, id); err != nil {
		return nil, err
	}
	return &image, nil
}

// Create inserts a new gallery image.
func (r *GalleryRepository) Create(ctx context.Context, image *models.GalleryImage) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	image.CreatedAt = now
	image.UpdatedAt = now
	const query = `INSERT INTO gallery_images (id, image_url, caption, caption_nepali, category, display_order, is_active, created_at, updated_at)
VALUES (:id, :image_url, :caption, :caption_nepali, :category, :display_order, :is_active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, image); err != nil {
		return fmt.Errorf("create gallery image: %w", err)
	}
	return nil
}

// Update modifies caption, category and visibility of a gallery image.
func (r *GalleryRepository) Update(ctx context.Context, image *models.GalleryImage) error {
	image.UpdatedAt = time.Now().UTC()
	const query = `UPDATE gallery_images SET image_url = :image_url, caption = :caption, caption_nepali = :caption_nepali,
category = :category, is_active = :is_active, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, image); err != nil {
		return fmt.Errorf("update gallery image: %w", err)
	}
	return nil
}

// Delete removes a gallery image row.
func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM gallery_images WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	return nil
}

// Count returns the number of gallery images.
func (r *GalleryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM gallery_images"); err != nil {
		return 0, fmt.Errorf("count gallery images: %w", err)
	}
	return count, nil
}

// ReplaceDisplayOrder persists a new visual order for the whole collection.
func (r *GalleryRepository) ReplaceDisplayOrder(ctx context.Context, ids []string) error {
	return replaceDisplayOrder(ctx, r.db, "gallery_images", ids)
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sunrise-school/cms-api/internal/models"
)

// TeamRepository provides persistence for staff profiles.
type TeamRepository struct {
	db *sqlx.DB
}

// NewTeamRepository creates the repository.
func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// List returns team members ascending by display order.
func (r *TeamRepository) List(ctx context.Context, includeInactive bool) ([]models.TeamMember, error) {
	query := `SELECT id, name, name_nepali, position, position_nepali, image_url, display_order, is_active, created_at, updated_at
FROM team_members`
	if !includeInactive {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY display_order ASC"
	var members []models.TeamMember
	if err := r.db.SelectContext(ctx, &members, query); err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return members, nil
}

// GetByID returns a team member by identifier.
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	const query = `SELECT id, name, name_nepali, position, position_nepali, image_url, display_order, is_active, created_at, updated_at
FROM team_members WHERE id = $1`
	var member models.TeamMember
	if err := r.db.GetContext(ctx, &member, query, id); err != nil {
		return nil, err
	}
	return &member, nil
}

// Create inserts a new team member.
func (r *TeamRepository) Create(ctx context.Context, member *models.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now
	const query = `INSERT INTO team_members (id, name, name_nepali, position, position_nepali, image_url, display_order, is_active, created_at, updated_at)
VALUES (:id, :name, :name_nepali, :position, :position_nepali, :image_url, :display_order, :is_active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, member); err != nil {
		return fmt.Errorf("create team member: %w", err)
	}
	return nil
}

// Update modifies an existing team member profile.
func (r *TeamRepository) Update(ctx context.Context, member *models.TeamMember) error {
	member.UpdatedAt = time.Now().UTC()
	const query = `UPDATE team_members SET name = :name, name_nepali = :name_nepali, position = :position,
position_nepali = :position_nepali, image_url = :image_url, is_active = :is_active, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, member); err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	return nil
}

// Delete removes a team member row.
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM team_members WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}

// Count returns the number of team members.
func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM team_members"); err != nil {
		return 0, fmt.Errorf("count team members: %w", err)
	}
	return count, nil
}

// ReplaceDisplayOrder persists a new visual order for the whole collection.
func (r *TeamRepository) ReplaceDisplayOrder(ctx context.Context, ids []string) error {
	return replaceDisplayOrder(ctx, r.db, "team_members", ids)
}

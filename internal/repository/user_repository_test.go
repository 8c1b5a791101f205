package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunrise-school/cms-api/internal/models"
)

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "full_name", "active", "last_login", "created_at", "updated_at"}).
		AddRow("u-1", "admin@school.edu.np", "$2a$10$hash", "Site Admin", true, nil, now, now)
	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("admin@school.edu.np").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "admin@school.edu.np")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryListRoles(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	rows := sqlmock.NewRows([]string{"user_id", "role"}).AddRow("u-1", "admin")
	mock.ExpectQuery("SELECT user_id, role FROM user_roles WHERE user_id").
		WithArgs("u-1").
		WillReturnRows(rows)

	roles, err := repo.ListRoles(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin"}, roles)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateAuditLog(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	mock.ExpectExec("INSERT INTO audit_logs").
		WillReturnResult(sqlmock.NewResult(1, 1))

	userID := "u-1"
	log := &models.AuditLog{UserID: &userID, Action: models.AuditActionContentCreate, Resource: "notices"}
	require.NoError(t, repo.CreateAuditLog(context.Background(), log))
	assert.NotEmpty(t, log.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

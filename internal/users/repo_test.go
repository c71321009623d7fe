package users

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cropsense/cropsense-backend/pkg/db"
	"github.com/cropsense/cropsense-backend/pkg/db/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}))
	return NewRepository(conn)
}

func TestCreateAndLookupUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		Username:     "greenacres",
		Email:        "farmer@example.com",
		PasswordHash: "argon2id$hash",
	})
	require.NoError(t, err)
	require.NotEqual(t, "", created.ID.String())

	byEmail, err := repo.FindByEmail(ctx, "farmer@example.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	byUsername, err := repo.FindByUsername(ctx, "greenacres")
	require.NoError(t, err)
	require.Equal(t, created.ID, byUsername.ID)

	byEither, err := repo.FindByUsernameOrEmail(ctx, "greenacres")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEither.ID)

	byEither, err = repo.FindByUsernameOrEmail(ctx, "farmer@example.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEither.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "greenacres", byID.Username)
}

func TestDuplicateUsernameIsUniqueViolation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateUserDTO{Username: "greenacres", Email: "a@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, CreateUserDTO{Username: "greenacres", Email: "b@example.com", PasswordHash: "h"})
	require.Error(t, err)
	require.True(t, db.IsUniqueViolation(err, "username"), "duplicate username should surface as a unique violation")
}

func TestUpdateLastLogin(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{Username: "greenacres", Email: "farmer@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	require.Nil(t, created.LastLoginAt)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateLastLogin(ctx, created.ID, now))

	reloaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.LastLoginAt)
	require.WithinDuration(t, now, *reloaded.LastLoginAt, time.Second)
}

func TestFindMissingUserReturnsRecordNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.FindByUsernameOrEmail(context.Background(), "nobody")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

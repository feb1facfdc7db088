package persistence

import (
	"context"
	"testing"

	"github.com/draftly/backend/internal/domain/identity"
	"github.com/draftly/backend/internal/domain/shared"
	"github.com/draftly/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.UserModel{})
	require.NoError(t, err)

	return db
}

func TestGormUserRepository_CreateAndFind(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewUser("Jamie Rivera", "jamie@example.com", "password1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "jamie@example.com", found.Email)
		assert.Equal(t, identity.SubscriptionStatusTrial, found.Subscription.Status)
		require.NotNil(t, found.Subscription.TrialEndsAt)
	})

	t.Run("finds by email case-insensitively", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "Jamie@Example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("missing user yields not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUserRepository_ExistsByEmail(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewUser("Jamie Rivera", "jamie@example.com", "password1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	exists, err := repo.ExistsByEmail(ctx, "jamie@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormUserRepository_Update(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewUser("Jamie Rivera", "jamie@example.com", "password1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, user.Activate(identity.SubscriptionPlanAnnual))
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, identity.SubscriptionStatusActive, found.Subscription.Status)
	assert.Equal(t, identity.SubscriptionPlanAnnual, found.Subscription.Plan)
	assert.Nil(t, found.Subscription.TrialEndsAt)
}

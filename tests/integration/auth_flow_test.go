package integration

import (
	"context"
	"testing"
	"time"

	identityapp "github.com/draftly/backend/internal/application/identity"
	"github.com/draftly/backend/internal/infrastructure/auth"
	"github.com/draftly/backend/internal/infrastructure/config"
	"github.com/draftly/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "integration-secret-at-least-32-chars",
		RefreshSecret:          "integration-refresh-secret-32-chars!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "draftly-test",
		MaxRefreshCount:        10,
	})
}

func newAuthService(tdb *TestDB) *identityapp.AuthService {
	users := persistence.NewGormUserRepository(tdb.DB)
	return identityapp.NewAuthService(users, newTestJWTService(), zap.NewNop())
}

// TestAuthFlow exercises the full account lifecycle against a real database:
// registration, login, token refresh, password change and subscription moves.
func TestAuthFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	service := newAuthService(tdb)
	ctx := context.Background()

	resp, err := service.Register(ctx, identityapp.RegisterRequest{
		Name:     "Jane Freelancer",
		Email:    "jane@example.com",
		Password: "supersecret123",
		Company:  "Jane Design Studio",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Tokens)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, "Jane Design Studio", resp.User.Company)
	assert.Equal(t, "trial", resp.User.Subscription.Status)
	assert.True(t, resp.User.Subscription.CanGenerate)
	require.NotNil(t, resp.User.Subscription.TrialEndsAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 14), *resp.User.Subscription.TrialEndsAt, time.Minute)

	userID := uuid.MustParse(resp.User.ID)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := service.Register(ctx, identityapp.RegisterRequest{
			Name:     "Impostor",
			Email:    "jane@example.com",
			Password: "supersecret123",
		})
		assert.Error(t, err)
	})

	t.Run("login returns a working token pair", func(t *testing.T) {
		loginResp, err := service.Login(ctx, identityapp.LoginRequest{
			Email:    "jane@example.com",
			Password: "supersecret123",
		})
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, loginResp.User.ID)

		refreshed, err := service.RefreshToken(ctx, loginResp.Tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, err := service.Login(ctx, identityapp.LoginRequest{
			Email:    "jane@example.com",
			Password: "not-the-password",
		})
		assert.Error(t, err)
	})

	t.Run("password change invalidates the old password", func(t *testing.T) {
		err := service.ChangePassword(ctx, userID, identityapp.ChangePasswordRequest{
			OldPassword: "supersecret123",
			NewPassword: "evenmoresecret456",
		})
		require.NoError(t, err)

		_, err = service.Login(ctx, identityapp.LoginRequest{
			Email:    "jane@example.com",
			Password: "supersecret123",
		})
		assert.Error(t, err)

		_, err = service.Login(ctx, identityapp.LoginRequest{
			Email:    "jane@example.com",
			Password: "evenmoresecret456",
		})
		assert.NoError(t, err)
	})

	t.Run("company update persists", func(t *testing.T) {
		info, err := service.UpdateCompany(ctx, userID, "Jane Studio LLC")
		require.NoError(t, err)
		assert.Equal(t, "Jane Studio LLC", info.Company)

		reloaded, err := service.GetCurrentUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Studio LLC", reloaded.Company)
	})

	t.Run("subscribe then cancel", func(t *testing.T) {
		info, err := service.Subscribe(ctx, userID, identityapp.SubscribeRequest{Plan: "annual"})
		require.NoError(t, err)
		assert.Equal(t, "active", info.Subscription.Status)
		assert.Equal(t, "annual", info.Subscription.Plan)
		assert.True(t, info.Subscription.CanGenerate)

		canceled, err := service.CancelSubscription(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "canceled", canceled.Subscription.Status)
		assert.False(t, canceled.Subscription.CanGenerate)

		// A second cancel has nothing to cancel
		_, err = service.CancelSubscription(ctx, userID)
		assert.Error(t, err)
	})
}

package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("starts on trial with an end date", func(t *testing.T) {
		user, err := NewUser("Jamie Rivera", "jamie@example.com", "password1")
		require.NoError(t, err)

		assert.Equal(t, SubscriptionStatusTrial, user.Subscription.Status)
		require.NotNil(t, user.Subscription.TrialEndsAt)
		assert.True(t, user.Subscription.TrialEndsAt.After(time.Now()))
		assert.True(t, user.CanGenerate())
	})

	t.Run("normalizes email", func(t *testing.T) {
		user, err := NewUser("Jamie", " Jamie@Example.COM ", "password1")
		require.NoError(t, err)
		assert.Equal(t, "jamie@example.com", user.Email)
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, err := NewUser("Jamie", "jamie@example.com", "short1")
		assert.Error(t, err)

		_, err = NewUser("Jamie", "jamie@example.com", "nonumbershere")
		assert.Error(t, err)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("Jamie", "not-an-email", "password1")
		assert.Error(t, err)
	})
}

func TestVerifyPassword(t *testing.T) {
	user, err := NewUser("Jamie", "jamie@example.com", "password1")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("password1"))
	assert.False(t, user.VerifyPassword("password2"))
}

func TestCanGenerate(t *testing.T) {
	user, err := NewUser("Jamie", "jamie@example.com", "password1")
	require.NoError(t, err)

	t.Run("expired trial blocks generation", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		user.Subscription.TrialEndsAt = &past
		assert.False(t, user.CanGenerate())
	})

	t.Run("active plan allows generation", func(t *testing.T) {
		require.NoError(t, user.Activate(SubscriptionPlanAnnual))
		assert.True(t, user.CanGenerate())
		assert.Nil(t, user.Subscription.TrialEndsAt)
	})

	t.Run("canceled plan blocks generation", func(t *testing.T) {
		require.NoError(t, user.Cancel())
		assert.False(t, user.CanGenerate())

		assert.Error(t, user.Cancel())
	})
}

func TestChangePassword(t *testing.T) {
	user, err := NewUser("Jamie", "jamie@example.com", "password1")
	require.NoError(t, err)

	assert.Error(t, user.ChangePassword("wrong", "newpassword2"))
	require.NoError(t, user.ChangePassword("password1", "newpassword2"))
	assert.True(t, user.VerifyPassword("newpassword2"))
}

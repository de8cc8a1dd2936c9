package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user successfully", func(t *testing.T) {
		user, err := NewUser("recepcion1", "secret123", RoleReceptionist)

		require.NoError(t, err)
		assert.Equal(t, "recepcion1", user.Username)
		assert.Equal(t, RoleReceptionist, user.Role)
		assert.Equal(t, UserStatusActive, user.Status)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.Len(t, user.GetDomainEvents(), 1)
	})

	t.Run("lowercases the username", func(t *testing.T) {
		user, err := NewUser("Admin01", "secret123", RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, "admin01", user.Username)
	})

	t.Run("fails with short username", func(t *testing.T) {
		user, err := NewUser("ab", "secret123", RoleAdmin)

		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("fails with weak password", func(t *testing.T) {
		user, err := NewUser("admin01", "short", RoleAdmin)

		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("fails with password missing a number", func(t *testing.T) {
		user, err := NewUser("admin01", "onlyletters", RoleAdmin)

		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("fails with unknown role", func(t *testing.T) {
		user, err := NewUser("admin01", "secret123", Role("entrenador"))

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "admin")
	})
}

func TestUserVerifyPassword(t *testing.T) {
	user, err := NewUser("admin01", "secret123", RoleAdmin)
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("secret123"))
	assert.False(t, user.VerifyPassword("wrong123"))
}

func TestUserChangePassword(t *testing.T) {
	user, err := NewUser("admin01", "secret123", RoleAdmin)
	require.NoError(t, err)

	t.Run("changes with correct old password", func(t *testing.T) {
		err := user.ChangePassword("secret123", "newpass456")

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("newpass456"))
	})

	t.Run("fails with wrong old password", func(t *testing.T) {
		err := user.ChangePassword("wrong", "another789")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "incorrect")
	})
}

func TestUserSetRole(t *testing.T) {
	user, err := NewUser("recepcion1", "secret123", RoleReceptionist)
	require.NoError(t, err)
	user.ClearDomainEvents()

	require.NoError(t, user.SetRole(RoleAdmin))
	assert.Equal(t, RoleAdmin, user.Role)
	assert.Len(t, user.GetDomainEvents(), 1)

	assert.Error(t, user.SetRole(Role("invalid")))
}

func TestUserLockout(t *testing.T) {
	t.Run("locks after max failed attempts", func(t *testing.T) {
		user, err := NewUser("recepcion1", "secret123", RoleReceptionist)
		require.NoError(t, err)

		assert.False(t, user.RecordLoginFailure(3, time.Hour))
		assert.False(t, user.RecordLoginFailure(3, time.Hour))
		assert.True(t, user.RecordLoginFailure(3, time.Hour))

		assert.True(t, user.IsLocked())
		assert.False(t, user.CanLogin())
	})

	t.Run("success resets the counter", func(t *testing.T) {
		user, err := NewUser("recepcion1", "secret123", RoleReceptionist)
		require.NoError(t, err)

		user.RecordLoginFailure(3, time.Hour)
		user.RecordLoginSuccess("10.0.0.1")

		assert.Equal(t, 0, user.FailedAttempts)
		assert.NotNil(t, user.LastLoginAt)
		assert.Equal(t, "10.0.0.1", user.LastLoginIP)
	})

	t.Run("unlock restores login", func(t *testing.T) {
		user, err := NewUser("recepcion1", "secret123", RoleReceptionist)
		require.NoError(t, err)
		user.RecordLoginFailure(1, time.Hour)
		require.True(t, user.IsLocked())

		require.NoError(t, user.Unlock())

		assert.True(t, user.CanLogin())
	})
}

func TestUserDeactivate(t *testing.T) {
	user, err := NewUser("recepcion1", "secret123", RoleReceptionist)
	require.NoError(t, err)

	require.NoError(t, user.Deactivate())
	assert.False(t, user.CanLogin())

	assert.Error(t, user.Deactivate())

	require.NoError(t, user.Activate())
	assert.True(t, user.CanLogin())
}

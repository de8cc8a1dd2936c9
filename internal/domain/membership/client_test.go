package membership

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlan(t *testing.T, durationDays int) *Plan {
	t.Helper()
	plan, err := NewPlan("Mensual", decimal.NewFromInt(150), durationDays, "Acceso completo")
	require.NoError(t, err)
	return plan
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	now := time.Now()
	client, err := NewClient("Maria Lopez", "1234567", "71234567", "maria@example.com",
		uuid.New(), "Mensual", now, now.Add(30*24*time.Hour))
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	planID := uuid.New()
	inicio := time.Now()
	fin := inicio.Add(30 * 24 * time.Hour)

	t.Run("creates client successfully", func(t *testing.T) {
		client, err := NewClient("Maria Lopez", "1234567", "71234567", "maria@example.com",
			planID, "Mensual", inicio, fin)

		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "Maria Lopez", client.Name)
		assert.Equal(t, "1234567", client.CINIT)
		assert.Equal(t, "+59171234567", client.Phone)
		assert.Equal(t, "maria@example.com", client.Email)
		assert.Equal(t, planID, client.PlanID)
		assert.Equal(t, "Mensual", client.PlanName)
		assert.Equal(t, ClientStatusActive, client.Status)
		assert.False(t, client.Frozen)
		assert.Len(t, client.GetDomainEvents(), 1)
	})

	t.Run("allows empty email", func(t *testing.T) {
		client, err := NewClient("Maria Lopez", "1234568", "71234567", "",
			planID, "Mensual", inicio, fin)

		require.NoError(t, err)
		assert.Empty(t, client.Email)
	})

	t.Run("fails with single-character name", func(t *testing.T) {
		client, err := NewClient("M", "1234567", "71234567", "",
			planID, "Mensual", inicio, fin)

		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "at least 2 characters")
	})

	t.Run("fails with whitespace-only name", func(t *testing.T) {
		client, err := NewClient("   ", "1234567", "71234567", "",
			planID, "Mensual", inicio, fin)

		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("fails with empty CI/NIT", func(t *testing.T) {
		client, err := NewClient("Maria Lopez", "", "71234567", "",
			planID, "Mensual", inicio, fin)

		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "CI/NIT cannot be empty")
	})

	t.Run("fails with malformed email", func(t *testing.T) {
		client, err := NewClient("Maria Lopez", "1234567", "71234567", "not-an-email",
			planID, "Mensual", inicio, fin)

		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("fails when end date is not after start date", func(t *testing.T) {
		client, err := NewClient("Maria Lopez", "1234567", "71234567", "",
			planID, "Mensual", inicio, inicio)

		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "end date must be after")
	})

	t.Run("fails with nil plan ID", func(t *testing.T) {
		client, err := NewClient("Maria Lopez", "1234567", "71234567", "",
			uuid.Nil, "Mensual", inicio, fin)

		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestNormalizePhone(t *testing.T) {
	t.Run("prepends country prefix to 8 local digits", func(t *testing.T) {
		phone, err := NormalizePhone("71234567")

		require.NoError(t, err)
		assert.Equal(t, "+59171234567", phone)
	})

	t.Run("keeps already-canonical numbers stable", func(t *testing.T) {
		phone, err := NormalizePhone("+59171234567")

		require.NoError(t, err)
		assert.Equal(t, "+59171234567", phone)
	})

	t.Run("strips common separators", func(t *testing.T) {
		phone, err := NormalizePhone("7123-4567")

		require.NoError(t, err)
		assert.Equal(t, "+59171234567", phone)
	})

	t.Run("rejects fewer than 8 digits", func(t *testing.T) {
		_, err := NormalizePhone("7123456")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "exactly 8 digits")
	})

	t.Run("rejects more than 8 digits", func(t *testing.T) {
		_, err := NormalizePhone("712345678")

		assert.Error(t, err)
	})

	t.Run("rejects non-digit characters", func(t *testing.T) {
		_, err := NormalizePhone("7123456a")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only contain digits")
	})
}

func TestClientStatusAt(t *testing.T) {
	client := newTestClient(t)

	t.Run("active inside the window", func(t *testing.T) {
		assert.Equal(t, ClientStatusActive, client.StatusAt(client.FechaFin.Add(-time.Hour)))
	})

	t.Run("expired exactly at the window end", func(t *testing.T) {
		assert.Equal(t, ClientStatusExpired, client.StatusAt(client.FechaFin))
	})

	t.Run("expired after the window end", func(t *testing.T) {
		assert.Equal(t, ClientStatusExpired, client.StatusAt(client.FechaFin.Add(time.Second)))
	})

	t.Run("frozen takes precedence over active", func(t *testing.T) {
		frozen := newTestClient(t)
		require.NoError(t, frozen.Freeze())

		assert.Equal(t, ClientStatusFrozen, frozen.StatusAt(frozen.FechaFin.Add(-time.Hour)))
	})

	t.Run("frozen takes precedence over expired", func(t *testing.T) {
		frozen := newTestClient(t)
		require.NoError(t, frozen.Freeze())

		assert.Equal(t, ClientStatusFrozen, frozen.StatusAt(frozen.FechaFin.Add(time.Hour)))
	})
}

func TestClientRefreshStatus(t *testing.T) {
	t.Run("updates stale label after expiry", func(t *testing.T) {
		client := newTestClient(t)
		require.Equal(t, ClientStatusActive, client.Status)

		changed := client.RefreshStatus(client.FechaFin.Add(time.Hour))

		assert.True(t, changed)
		assert.Equal(t, ClientStatusExpired, client.Status)
	})

	t.Run("reports no change when label is current", func(t *testing.T) {
		client := newTestClient(t)

		changed := client.RefreshStatus(time.Now())

		assert.False(t, changed)
		assert.Equal(t, ClientStatusActive, client.Status)
	})
}

func TestClientRenew(t *testing.T) {
	t.Run("starts a fresh window from now", func(t *testing.T) {
		client := newTestClient(t)
		plan := newTestPlan(t, 30)
		now := time.Now()

		err := client.Renew(plan, now)

		require.NoError(t, err)
		assert.Equal(t, plan.ID, client.PlanID)
		assert.Equal(t, plan.Name, client.PlanName)
		assert.Equal(t, now, client.FechaInicio)
		assert.Equal(t, now.Add(30*24*time.Hour), client.FechaFin)
		assert.Equal(t, ClientStatusActive, client.Status)
	})

	t.Run("discards remaining time on early renewal", func(t *testing.T) {
		client := newTestClient(t)
		plan := newTestPlan(t, 30)
		now := client.FechaFin.Add(-10 * 24 * time.Hour)

		err := client.Renew(plan, now)

		require.NoError(t, err)
		assert.Equal(t, now.Add(30*24*time.Hour), client.FechaFin)
	})

	t.Run("reactivates an expired client", func(t *testing.T) {
		client := newTestClient(t)
		plan := newTestPlan(t, 30)
		now := client.FechaFin.Add(48 * time.Hour)
		require.Equal(t, ClientStatusExpired, client.StatusAt(now))

		err := client.Renew(plan, now)

		require.NoError(t, err)
		assert.Equal(t, ClientStatusActive, client.StatusAt(now))
	})

	t.Run("refuses a frozen client", func(t *testing.T) {
		client := newTestClient(t)
		require.NoError(t, client.Freeze())
		plan := newTestPlan(t, 30)
		before := client.FechaFin

		err := client.Renew(plan, time.Now())

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CLIENT_FROZEN", domainErr.Code)
		assert.True(t, client.Frozen)
		assert.Equal(t, before, client.FechaFin)
	})

	t.Run("fails with non-positive duration", func(t *testing.T) {
		client := newTestClient(t)
		plan := newTestPlan(t, 30)
		plan.DurationDays = 0
		before := client.FechaFin

		err := client.Renew(plan, time.Now())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one day")
		assert.Equal(t, before, client.FechaFin)
	})

	t.Run("fails with nil plan", func(t *testing.T) {
		client := newTestClient(t)

		err := client.Renew(nil, time.Now())

		assert.Error(t, err)
	})
}

func TestClientFreezeUnfreeze(t *testing.T) {
	t.Run("freeze then unfreeze restores window status", func(t *testing.T) {
		client := newTestClient(t)

		require.NoError(t, client.Freeze())
		assert.True(t, client.Frozen)
		assert.Equal(t, ClientStatusFrozen, client.Status)

		require.NoError(t, client.Unfreeze(time.Now()))
		assert.False(t, client.Frozen)
		assert.Equal(t, ClientStatusActive, client.Status)
	})

	t.Run("unfreeze after window end lands on expired", func(t *testing.T) {
		client := newTestClient(t)
		require.NoError(t, client.Freeze())

		require.NoError(t, client.Unfreeze(client.FechaFin.Add(time.Hour)))

		assert.Equal(t, ClientStatusExpired, client.Status)
	})

	t.Run("fails to freeze twice", func(t *testing.T) {
		client := newTestClient(t)
		require.NoError(t, client.Freeze())

		err := client.Freeze()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already frozen")
	})

	t.Run("fails to unfreeze an unfrozen client", func(t *testing.T) {
		client := newTestClient(t)

		err := client.Unfreeze(time.Now())

		assert.Error(t, err)
	})
}

func TestClientUpdate(t *testing.T) {
	client := newTestClient(t)
	client.ClearDomainEvents()

	t.Run("updates contact details", func(t *testing.T) {
		err := client.Update("Juan Perez", "60001234", "juan@example.com")

		require.NoError(t, err)
		assert.Equal(t, "Juan Perez", client.Name)
		assert.Equal(t, "+59160001234", client.Phone)
		assert.Equal(t, "juan@example.com", client.Email)
		assert.Len(t, client.GetDomainEvents(), 1)
	})

	t.Run("fails with invalid phone", func(t *testing.T) {
		err := client.Update("Juan Perez", "123", "")

		assert.Error(t, err)
	})
}

func TestClientDaysRemaining(t *testing.T) {
	client := newTestClient(t)

	assert.Equal(t, 29, client.DaysRemaining(client.FechaInicio.Add(12*time.Hour)))
	assert.Equal(t, 0, client.DaysRemaining(client.FechaFin))
	assert.Equal(t, 0, client.DaysRemaining(client.FechaFin.Add(time.Hour)))
}

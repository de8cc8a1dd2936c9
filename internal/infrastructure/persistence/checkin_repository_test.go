package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/membership"
	"github.com/gympro/backend/internal/domain/shared"
	"github.com/gympro/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCheckInTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.CheckInModel{}, &models.ClientModel{})
	require.NoError(t, err)

	return db
}

func recordCheckIn(t *testing.T, repo *GormCheckInRepository, client *membership.Client, at time.Time) *membership.CheckIn {
	t.Helper()
	checkIn := membership.NewCheckIn(client, at)
	require.NoError(t, repo.Save(context.Background(), checkIn))
	return checkIn
}

func TestGormCheckInRepository(t *testing.T) {
	db := setupCheckInTestDB(t)
	repo := NewGormCheckInRepository(db)
	ctx := context.Background()

	client := newPersistedClient(t, "Pedro Choque", "4000001")
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	first := recordCheckIn(t, repo, client, base)
	recordCheckIn(t, repo, client, base.Add(26*time.Hour))
	recordCheckIn(t, repo, client, base.Add(50*time.Hour))

	t.Run("finds by id with snapshots", func(t *testing.T) {
		found, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, client.ID, found.ClientID)
		assert.Equal(t, "Pedro Choque", found.ClientName)
		assert.Equal(t, "4000001", found.CINIT)
	})

	t.Run("finds by client newest first", func(t *testing.T) {
		checkIns, err := repo.FindByClient(ctx, client.ID, shared.Filter{})
		require.NoError(t, err)
		require.Len(t, checkIns, 3)
		assert.True(t, checkIns[0].CheckedInAt.After(checkIns[1].CheckedInAt))
	})

	t.Run("find between is end exclusive", func(t *testing.T) {
		checkIns, err := repo.FindBetween(ctx, base, base.Add(26*time.Hour), shared.Filter{})
		require.NoError(t, err)
		assert.Len(t, checkIns, 1)
	})

	t.Run("count between", func(t *testing.T) {
		count, err := repo.CountBetween(ctx, base, base.Add(72*time.Hour), shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		count, err = repo.CountBetween(ctx, base.Add(time.Hour), base.Add(72*time.Hour), shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("count by client between", func(t *testing.T) {
		other := newPersistedClient(t, "Otra Persona", "4000002")
		recordCheckIn(t, repo, other, base.Add(time.Hour))

		count, err := repo.CountByClientBetween(ctx, client.ID, base, base.Add(72*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCheckInRepositoryClientFilter(t *testing.T) {
	db := setupCheckInTestDB(t)
	repo := NewGormCheckInRepository(db)
	ctx := context.Background()

	ana := newPersistedClient(t, "Ana Mamani", "4100001")
	luis := newPersistedClient(t, "Luis Vargas", "4100002")
	base := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	recordCheckIn(t, repo, ana, base)
	recordCheckIn(t, repo, ana, base.Add(24*time.Hour))
	recordCheckIn(t, repo, luis, base.Add(2*time.Hour))

	from, to := base.Add(-time.Hour), base.Add(48*time.Hour)
	byClient := shared.Filter{Filters: map[string]any{"client_id": ana.ID.String()}}

	t.Run("find between honors the client filter", func(t *testing.T) {
		checkIns, err := repo.FindBetween(ctx, from, to, byClient)
		require.NoError(t, err)
		require.Len(t, checkIns, 2)
		for _, checkIn := range checkIns {
			assert.Equal(t, ana.ID, checkIn.ClientID)
		}
	})

	t.Run("count between honors the client filter", func(t *testing.T) {
		count, err := repo.CountBetween(ctx, from, to, byClient)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("empty filter still sees everyone", func(t *testing.T) {
		count, err := repo.CountBetween(ctx, from, to, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

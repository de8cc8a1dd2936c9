package membership

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	t.Run("creates plan successfully", func(t *testing.T) {
		plan, err := NewPlan("Trimestral", decimal.NewFromInt(400), 90, "Tres meses de acceso")

		require.NoError(t, err)
		assert.Equal(t, "Trimestral", plan.Name)
		assert.True(t, plan.Price.Equal(decimal.NewFromInt(400)))
		assert.Equal(t, 90, plan.DurationDays)
		assert.True(t, plan.Active)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		plan, err := NewPlan("", decimal.NewFromInt(100), 30, "")

		assert.Error(t, err)
		assert.Nil(t, plan)
	})

	t.Run("fails with negative price", func(t *testing.T) {
		plan, err := NewPlan("Mensual", decimal.NewFromInt(-1), 30, "")

		assert.Error(t, err)
		assert.Nil(t, plan)
		assert.Contains(t, err.Error(), "cannot be negative")
	})

	t.Run("fails with zero duration", func(t *testing.T) {
		plan, err := NewPlan("Mensual", decimal.NewFromInt(100), 0, "")

		assert.Error(t, err)
		assert.Nil(t, plan)
		assert.Contains(t, err.Error(), "at least one day")
	})
}

func TestPlanUpdate(t *testing.T) {
	plan, err := NewPlan("Mensual", decimal.NewFromInt(150), 30, "")
	require.NoError(t, err)

	t.Run("updates details", func(t *testing.T) {
		err := plan.Update("Mensual Plus", decimal.NewFromInt(200), 30, "Incluye clases")

		require.NoError(t, err)
		assert.Equal(t, "Mensual Plus", plan.Name)
		assert.True(t, plan.Price.Equal(decimal.NewFromInt(200)))
	})

	t.Run("fails with negative duration", func(t *testing.T) {
		err := plan.Update("Mensual", decimal.NewFromInt(150), -5, "")

		assert.Error(t, err)
	})
}

func TestPlanActivation(t *testing.T) {
	plan, err := NewPlan("Anual", decimal.NewFromInt(1200), 365, "")
	require.NoError(t, err)

	require.NoError(t, plan.Deactivate())
	assert.False(t, plan.IsActive())

	assert.Error(t, plan.Deactivate())

	require.NoError(t, plan.Activate())
	assert.True(t, plan.IsActive())

	assert.Error(t, plan.Activate())
}

func TestPlanWindowFrom(t *testing.T) {
	plan, err := NewPlan("Mensual", decimal.NewFromInt(150), 30, "")
	require.NoError(t, err)

	now := time.Now()
	inicio, fin := plan.WindowFrom(now)

	assert.Equal(t, now, inicio)
	assert.Equal(t, now.Add(30*24*time.Hour), fin)
}

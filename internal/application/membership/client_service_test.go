package membership

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/membership"
	"github.com/gympro/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPlan(t *testing.T, durationDays int) *membership.Plan {
	t.Helper()
	plan, err := membership.NewPlan("Mensual", decimal.NewFromInt(150), durationDays, "")
	require.NoError(t, err)
	return plan
}

func testClient(t *testing.T) *membership.Client {
	t.Helper()
	now := time.Now()
	client, err := membership.NewClient("Maria Lopez", "1234567", "71234567", "",
		uuid.New(), "Mensual", now, now.Add(30*24*time.Hour))
	require.NoError(t, err)
	return client
}

func TestClientServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registers client with window from plan", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		planRepo := new(MockPlanRepository)
		service := NewClientService(clientRepo, planRepo)

		plan := testPlan(t, 30)
		clientRepo.On("ExistsByCINIT", ctx, "1234567").Return(false, nil)
		planRepo.On("FindByID", ctx, plan.ID).Return(plan, nil)
		clientRepo.On("Save", ctx, mock.AnythingOfType("*membership.Client")).Return(nil)

		resp, err := service.Register(ctx, RegisterClientRequest{
			Name:   "Maria Lopez",
			CINIT:  "1234567",
			Phone:  "71234567",
			PlanID: plan.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, "+59171234567", resp.Phone)
		assert.Equal(t, "Mensual", resp.PlanName)
		assert.Equal(t, string(membership.ClientStatusActive), resp.Status)
		assert.WithinDuration(t, resp.FechaInicio.Add(30*24*time.Hour), resp.FechaFin, time.Second)
		clientRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate CI/NIT", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		planRepo := new(MockPlanRepository)
		service := NewClientService(clientRepo, planRepo)

		clientRepo.On("ExistsByCINIT", ctx, "1234567").Return(true, nil)

		resp, err := service.Register(ctx, RegisterClientRequest{
			Name:   "Maria Lopez",
			CINIT:  "1234567",
			Phone:  "71234567",
			PlanID: uuid.New(),
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "already exists")
		clientRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects inactive plan", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		planRepo := new(MockPlanRepository)
		service := NewClientService(clientRepo, planRepo)

		plan := testPlan(t, 30)
		require.NoError(t, plan.Deactivate())
		clientRepo.On("ExistsByCINIT", ctx, "1234567").Return(false, nil)
		planRepo.On("FindByID", ctx, plan.ID).Return(plan, nil)

		resp, err := service.Register(ctx, RegisterClientRequest{
			Name:   "Maria Lopez",
			CINIT:  "1234567",
			Phone:  "71234567",
			PlanID: plan.ID,
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("propagates validation errors", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		planRepo := new(MockPlanRepository)
		service := NewClientService(clientRepo, planRepo)

		plan := testPlan(t, 30)
		clientRepo.On("ExistsByCINIT", ctx, "1234567").Return(false, nil)
		planRepo.On("FindByID", ctx, plan.ID).Return(plan, nil)

		resp, err := service.Register(ctx, RegisterClientRequest{
			Name:   "Maria Lopez",
			CINIT:  "1234567",
			Phone:  "123",
			PlanID: plan.ID,
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "8 digits")
	})
}

func TestClientServiceRenew(t *testing.T) {
	ctx := context.Background()

	t.Run("renews and saves with lock", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		planRepo := new(MockPlanRepository)
		service := NewClientService(clientRepo, planRepo)
		fixed := time.Now()
		service.now = func() time.Time { return fixed }

		client := testClient(t)
		plan := testPlan(t, 90)
		clientRepo.On("FindByID", ctx, client.ID).Return(client, nil)
		planRepo.On("FindByID", ctx, plan.ID).Return(plan, nil)
		clientRepo.On("SaveWithLock", ctx, client).Return(nil)

		resp, err := service.Renew(ctx, client.ID, RenewClientRequest{PlanID: plan.ID})

		require.NoError(t, err)
		assert.Equal(t, fixed, resp.FechaInicio)
		assert.Equal(t, fixed.Add(90*24*time.Hour), resp.FechaFin)
		clientRepo.AssertExpectations(t)
	})

	t.Run("rejects renewal onto an inactive plan", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		planRepo := new(MockPlanRepository)
		service := NewClientService(clientRepo, planRepo)

		client := testClient(t)
		plan := testPlan(t, 30)
		require.NoError(t, plan.Deactivate())
		clientRepo.On("FindByID", ctx, client.ID).Return(client, nil)
		planRepo.On("FindByID", ctx, plan.ID).Return(plan, nil)

		resp, err := service.Renew(ctx, client.ID, RenewClientRequest{PlanID: plan.ID})

		assert.Error(t, err)
		assert.Nil(t, resp)
		clientRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})

	t.Run("refuses renewal while frozen", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		planRepo := new(MockPlanRepository)
		service := NewClientService(clientRepo, planRepo)

		client := testClient(t)
		require.NoError(t, client.Freeze())
		plan := testPlan(t, 30)
		clientRepo.On("FindByID", ctx, client.ID).Return(client, nil)
		planRepo.On("FindByID", ctx, plan.ID).Return(plan, nil)

		resp, err := service.Renew(ctx, client.ID, RenewClientRequest{PlanID: plan.ID})

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CLIENT_FROZEN", domainErr.Code)
		clientRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})

	t.Run("returns not found for unknown client", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		planRepo := new(MockPlanRepository)
		service := NewClientService(clientRepo, planRepo)

		id := uuid.New()
		clientRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		resp, err := service.Renew(ctx, id, RenewClientRequest{PlanID: uuid.New()})

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestClientServiceFreezeUnfreeze(t *testing.T) {
	ctx := context.Background()

	clientRepo := new(MockClientRepository)
	planRepo := new(MockPlanRepository)
	service := NewClientService(clientRepo, planRepo)

	client := testClient(t)
	clientRepo.On("FindByID", ctx, client.ID).Return(client, nil)
	clientRepo.On("Save", ctx, client).Return(nil)

	resp, err := service.Freeze(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, string(membership.ClientStatusFrozen), resp.Status)

	resp, err = service.Unfreeze(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, string(membership.ClientStatusActive), resp.Status)
}

func TestClientServiceList(t *testing.T) {
	ctx := context.Background()

	clientRepo := new(MockClientRepository)
	planRepo := new(MockPlanRepository)
	service := NewClientService(clientRepo, planRepo)

	clients := []membership.Client{*testClient(t), *testClient(t)}
	clientRepo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).Return(clients, nil)
	clientRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(2), nil)

	items, total, err := service.List(ctx, ClientListFilter{})

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(2), total)
}

func TestClientServiceCountByStatus(t *testing.T) {
	ctx := context.Background()

	clientRepo := new(MockClientRepository)
	planRepo := new(MockPlanRepository)
	service := NewClientService(clientRepo, planRepo)

	clientRepo.On("CountByStatus", ctx, membership.ClientStatusActive).Return(int64(10), nil)
	clientRepo.On("CountByStatus", ctx, membership.ClientStatusExpired).Return(int64(3), nil)
	clientRepo.On("CountByStatus", ctx, membership.ClientStatusFrozen).Return(int64(1), nil)

	counts, err := service.CountByStatus(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(10), counts["activo"])
	assert.Equal(t, int64(3), counts["vencido"])
	assert.Equal(t, int64(1), counts["congelado"])
	assert.Equal(t, int64(14), counts["total"])
}

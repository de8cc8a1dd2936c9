package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gympro/backend/internal/domain/identity"
	"github.com/gympro/backend/internal/domain/membership"
	"github.com/gympro/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockClientRepository is a mock implementation of membership.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Client), args.Error(1)
}

func (m *MockClientRepository) FindByCINIT(ctx context.Context, cinit string) (*membership.Client, error) {
	args := m.Called(ctx, cinit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]membership.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]membership.Client), args.Error(1)
}

func (m *MockClientRepository) FindByStatus(ctx context.Context, status membership.ClientStatus, filter shared.Filter) ([]membership.Client, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]membership.Client), args.Error(1)
}

func (m *MockClientRepository) FindByPlan(ctx context.Context, planID uuid.UUID, filter shared.Filter) ([]membership.Client, error) {
	args := m.Called(ctx, planID, filter)
	return args.Get(0).([]membership.Client), args.Error(1)
}

func (m *MockClientRepository) FindExpiringBefore(ctx context.Context, deadline time.Time, filter shared.Filter) ([]membership.Client, error) {
	args := m.Called(ctx, deadline, filter)
	return args.Get(0).([]membership.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *membership.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) SaveWithLock(ctx context.Context, client *membership.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) CountByStatus(ctx context.Context, status membership.ClientStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) CountByPlan(ctx context.Context, planID uuid.UUID) (int64, error) {
	args := m.Called(ctx, planID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) ExistsByCINIT(ctx context.Context, cinit string) (bool, error) {
	args := m.Called(ctx, cinit)
	return args.Bool(0), args.Error(1)
}

// MockPlanRepository is a mock implementation of membership.PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Plan), args.Error(1)
}

func (m *MockPlanRepository) FindByName(ctx context.Context, name string) (*membership.Plan, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Plan), args.Error(1)
}

func (m *MockPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]membership.Plan, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]membership.Plan), args.Error(1)
}

func (m *MockPlanRepository) FindActive(ctx context.Context, filter shared.Filter) ([]membership.Plan, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]membership.Plan), args.Error(1)
}

func (m *MockPlanRepository) Save(ctx context.Context, plan *membership.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlanRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlanRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// MockCheckInRepository is a mock implementation of membership.CheckInRepository
type MockCheckInRepository struct {
	mock.Mock
}

func (m *MockCheckInRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.CheckIn, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]membership.CheckIn, error) {
	args := m.Called(ctx, clientID, filter)
	return args.Get(0).([]membership.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) FindBetween(ctx context.Context, from, to time.Time, filter shared.Filter) ([]membership.CheckIn, error) {
	args := m.Called(ctx, from, to, filter)
	return args.Get(0).([]membership.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) Save(ctx context.Context, checkIn *membership.CheckIn) error {
	args := m.Called(ctx, checkIn)
	return args.Error(0)
}

func (m *MockCheckInRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCheckInRepository) CountBetween(ctx context.Context, from, to time.Time, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, from, to, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCheckInRepository) CountByClientBetween(ctx context.Context, clientID uuid.UUID, from, to time.Time) (int64, error) {
	args := m.Called(ctx, clientID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role identity.Role, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, role, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role identity.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/intervalrain/scheduler/internal/scheduling/domain"
)

type mockSprintRepo struct {
	mock.Mock
}

func (m *mockSprintRepo) Save(ctx context.Context, sprint *domain.Sprint) error {
	return m.Called(ctx, sprint).Error(0)
}

func (m *mockSprintRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sprint), args.Error(1)
}

type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Save(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskRepo) FindBySprint(ctx context.Context, sprintID uuid.UUID) ([]domain.Task, error) {
	args := m.Called(ctx, sprintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *mockTaskRepo) FindBySprintAndStatus(ctx context.Context, sprintID uuid.UUID, status domain.Status) ([]domain.Task, error) {
	args := m.Called(ctx, sprintID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *mockTaskRepo) UpdatePriority(ctx context.Context, id uuid.UUID, status domain.Status, priority int64) error {
	return m.Called(ctx, id, status, priority).Error(0)
}

type mockBusyRepo struct {
	mock.Mock
}

func (m *mockBusyRepo) Save(ctx context.Context, interval domain.BusyInterval) error {
	return m.Called(ctx, interval).Error(0)
}

func (m *mockBusyRepo) FindByUserInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.BusyInterval, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusyInterval), args.Error(1)
}

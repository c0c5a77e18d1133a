package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/intervalrain/scheduler/internal/scheduling/domain"
)

// mockSprintRepo is a mock implementation of domain.SprintRepository.
type mockSprintRepo struct {
	mock.Mock
}

func (m *mockSprintRepo) Save(ctx context.Context, sprint *domain.Sprint) error {
	args := m.Called(ctx, sprint)
	return args.Error(0)
}

func (m *mockSprintRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sprint), args.Error(1)
}

// mockTaskRepo is a mock implementation of domain.TaskRepository.
type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Save(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
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
	args := m.Called(ctx, id, status, priority)
	return args.Error(0)
}

// mockBusyRepo is a mock implementation of domain.BusyIntervalRepository.
type mockBusyRepo struct {
	mock.Mock
}

func (m *mockBusyRepo) Save(ctx context.Context, interval domain.BusyInterval) error {
	args := m.Called(ctx, interval)
	return args.Error(0)
}

func (m *mockBusyRepo) FindByUserInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.BusyInterval, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusyInterval), args.Error(1)
}

func rankedTask(sprintID uuid.UUID, title string, status domain.Status, priority int64) domain.Task {
	task := domain.Task{ID: uuid.New(), SprintID: sprintID, Title: title, Status: status}
	task.SetPriority(priority)
	return task
}

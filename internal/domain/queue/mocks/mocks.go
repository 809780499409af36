package mocks

import (
	"context"

	"github.com/graceolivia/ToDoistChoreQueue/internal/todoist"
	"github.com/stretchr/testify/mock"
)

// TaskService is a mock for queue.TaskService.
type TaskService struct {
	mock.Mock
}

func (m *TaskService) ListProjects(ctx context.Context) ([]todoist.Project, error) {
	args := m.Called(ctx)
	if projects, ok := args.Get(0).([]todoist.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskService) ListTasks(ctx context.Context, projectID string) ([]todoist.Task, error) {
	args := m.Called(ctx, projectID)
	if tasks, ok := args.Get(0).([]todoist.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskService) UpdateTask(ctx context.Context, id string, update todoist.UpdateTaskArgs) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *TaskService) EnsureLabel(ctx context.Context, name string) (todoist.Label, error) {
	args := m.Called(ctx, name)
	if label, ok := args.Get(0).(todoist.Label); ok {
		return label, args.Error(1)
	}
	return todoist.Label{}, args.Error(1)
}

package queue

import (
	"context"

	"github.com/graceolivia/ToDoistChoreQueue/internal/todoist"
)

// TaskService is the slice of the remote task API the promotion engine
// consumes.
type TaskService interface {
	ListProjects(ctx context.Context) ([]todoist.Project, error)
	ListTasks(ctx context.Context, projectID string) ([]todoist.Task, error)
	UpdateTask(ctx context.Context, id string, args todoist.UpdateTaskArgs) error
	EnsureLabel(ctx context.Context, name string) (todoist.Label, error)
}

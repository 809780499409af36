package queue

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/graceolivia/ToDoistChoreQueue/internal/todoist"
)

// NoDueDate is the due directive Todoist interprets as clearing a task's
// due date.
const NoDueDate = "no due date"

// Service promotes the head task of each configured queue and demotes the
// rest. Re-running it against an unchanged remote snapshot reproduces the
// same writes, so it is safe to drive from a periodic trigger without any
// local state.
type Service struct {
	tasks  TaskService
	logger *slog.Logger
}

// NewService creates a new promotion service.
func NewService(tasks TaskService, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{tasks: tasks, logger: logger}
}

// Promote runs the promote/demote/label transition for one queue. Remote
// failures are returned as errors for the caller's per-queue boundary;
// an unresolvable project or an empty queue is a Result, not an error.
func (s *Service) Promote(ctx context.Context, cfg Config) (*Result, error) {
	if strings.TrimSpace(cfg.Project) == "" {
		return nil, fmt.Errorf("%w: empty project name", ErrInvalidInput)
	}

	projects, err := s.tasks.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	projectID, ok := ResolveProject(projects, cfg.Project)
	if !ok {
		return &Result{Project: cfg.Project, Status: StatusProjectNotFound}, nil
	}

	tasks, err := s.tasks.ListTasks(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	if len(tasks) == 0 {
		return &Result{Project: cfg.Project, Status: StatusEmpty}, nil
	}

	ordered := SortTasks(tasks)
	head, rest := ordered[0], ordered[1:]

	// Unconditional write: re-running against an unchanged snapshot
	// reproduces the same due date, so no prior-run state is needed.
	err = s.tasks.UpdateTask(ctx, head.ID, todoist.UpdateTaskArgs{
		DueString: cfg.DueString,
		DueLang:   cfg.DueLang,
	})
	if err != nil {
		return nil, fmt.Errorf("promoting %q: %w", head.Content, err)
	}
	s.logger.Info("promoted head task",
		"project", cfg.Project, "task", head.Content, "due", cfg.DueString)

	cleared := 0
	if cfg.ClearDueOnRest {
		for _, task := range rest {
			if task.Due == nil {
				continue
			}
			err := s.tasks.UpdateTask(ctx, task.ID, todoist.UpdateTaskArgs{
				DueString: NoDueDate,
				DueLang:   cfg.DueLang,
			})
			if err != nil {
				return nil, fmt.Errorf("clearing due on %q: %w", task.Content, err)
			}
			cleared++
		}
	}

	labeled := false
	if cfg.PromoteLabel != "" {
		labeled = s.applyLabel(ctx, head, cfg.PromoteLabel)
	}

	return &Result{
		Project:      cfg.Project,
		Status:       StatusPromoted,
		PromotedTask: head.Content,
		ClearedDue:   cleared,
		LabelApplied: labeled,
	}, nil
}

// applyLabel attaches the promote label to the head task. Labeling is
// best-effort: failures are logged and reported as false, never as a
// queue-level error.
func (s *Service) applyLabel(ctx context.Context, head todoist.Task, name string) bool {
	label, err := s.tasks.EnsureLabel(ctx, name)
	if err != nil {
		s.logger.Warn("label lookup failed", "label", name, "error", err)
		return false
	}

	// The task may carry the label as an ID or as the raw token; tolerate
	// either representation before writing.
	if slices.Contains(head.Labels, label.ID) || slices.Contains(head.Labels, name) {
		return true
	}

	labels := append(slices.Clone(head.Labels), label.ID)
	if err := s.tasks.UpdateTask(ctx, head.ID, todoist.UpdateTaskArgs{Labels: labels}); err != nil {
		s.logger.Warn("label write failed", "label", name, "error", err)
		return false
	}
	return true
}

package runner

import (
	"context"
	"log/slog"

	"github.com/graceolivia/ToDoistChoreQueue/internal/domain/queue"
)

// Promoter runs the promotion transition for one queue.
type Promoter interface {
	Promote(ctx context.Context, cfg queue.Config) (*queue.Result, error)
}

// Runner drives configured queues strictly one after another. A failure on
// one queue is reported and the run continues with the next.
type Runner struct {
	promoter Promoter
	reporter *Reporter
	logger   *slog.Logger
}

// New creates a runner.
func New(promoter Promoter, reporter *Reporter, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{promoter: promoter, reporter: reporter, logger: logger}
}

// Run processes queues in configuration order and returns every outcome.
func (r *Runner) Run(ctx context.Context, queues []queue.Config) []queue.Result {
	results := make([]queue.Result, 0, len(queues))
	for _, cfg := range queues {
		res, err := r.promoter.Promote(ctx, cfg)
		if err != nil {
			r.logger.Error("queue failed", "project", cfg.Project, "error", err)
			res = &queue.Result{Project: cfg.Project, Status: queue.StatusError, Err: err}
		}
		r.reporter.Report(*res)
		results = append(results, *res)
	}
	return results
}

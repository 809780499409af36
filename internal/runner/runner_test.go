package runner_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/graceolivia/ToDoistChoreQueue/internal/domain/queue"
	"github.com/graceolivia/ToDoistChoreQueue/internal/runner"
	"github.com/stretchr/testify/require"
)

// stubPromoter returns canned outcomes keyed by project name.
type stubPromoter struct {
	results map[string]*queue.Result
	errs    map[string]error
	calls   []string
}

func (s *stubPromoter) Promote(_ context.Context, cfg queue.Config) (*queue.Result, error) {
	s.calls = append(s.calls, cfg.Project)
	if err, ok := s.errs[cfg.Project]; ok {
		return nil, err
	}
	return s.results[cfg.Project], nil
}

func TestRun_ProcessesQueuesInOrder(t *testing.T) {
	promoter := &stubPromoter{
		results: map[string]*queue.Result{
			"a": {Project: "a", Status: queue.StatusPromoted, PromotedTask: "02 trash"},
			"b": {Project: "b", Status: queue.StatusEmpty},
		},
	}
	var out, errOut bytes.Buffer
	r := runner.New(promoter, runner.NewReporter(&out, &errOut), nil)

	results := r.Run(context.Background(), []queue.Config{{Project: "a"}, {Project: "b"}})
	require.Equal(t, []string{"a", "b"}, promoter.calls)
	require.Len(t, results, 2)
	require.Contains(t, out.String(), `success: "02 trash" promoted in a`)
	require.Contains(t, out.String(), "info: b has no tasks")
	require.Empty(t, errOut.String())
}

func TestRun_FailureDoesNotAbortLaterQueues(t *testing.T) {
	promoter := &stubPromoter{
		results: map[string]*queue.Result{
			"b": {Project: "b", Status: queue.StatusPromoted, PromotedTask: "01 mop"},
		},
		errs: map[string]error{
			"a": errors.New("todoist api error 500: boom"),
		},
	}
	var out, errOut bytes.Buffer
	r := runner.New(promoter, runner.NewReporter(&out, &errOut), nil)

	results := r.Run(context.Background(), []queue.Config{{Project: "a"}, {Project: "b"}})
	require.Equal(t, []string{"a", "b"}, promoter.calls)
	require.Equal(t, queue.StatusError, results[0].Status)
	require.Equal(t, queue.StatusPromoted, results[1].Status)
	require.Contains(t, errOut.String(), "error: a - todoist api error 500: boom")
	require.Contains(t, out.String(), `success: "01 mop" promoted in b`)
}

func TestReport_SuccessDetails(t *testing.T) {
	var out, errOut bytes.Buffer
	reporter := runner.NewReporter(&out, &errOut)

	reporter.Report(queue.Result{
		Project:      "chore queue",
		Status:       queue.StatusPromoted,
		PromotedTask: "02 trash",
		ClearedDue:   3,
		LabelApplied: true,
	})

	require.Contains(t, out.String(), `success: "02 trash" promoted in chore queue`)
	require.Contains(t, out.String(), "cleared due dates from 3 other tasks")
	require.Contains(t, out.String(), "applied promote label")
}

func TestReport_ProjectNotFound(t *testing.T) {
	var out, errOut bytes.Buffer
	reporter := runner.NewReporter(&out, &errOut)

	reporter.Report(queue.Result{Project: "nope", Status: queue.StatusProjectNotFound})
	require.Contains(t, errOut.String(), `error: project "nope" not found`)
	require.Empty(t, out.String())
}

package runner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/graceolivia/ToDoistChoreQueue/internal/domain/queue"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Reporter prints one human-readable status line per queue. Successes and
// informational lines go to out, failures to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
}

// NewReporter creates a reporter writing to the given streams.
func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{out: out, errOut: errOut}
}

// Report renders the status template matching the result.
func (r *Reporter) Report(res queue.Result) {
	switch res.Status {
	case queue.StatusPromoted:
		line := fmt.Sprintf("success: %q promoted in %s", res.PromotedTask, res.Project)
		fmt.Fprintln(r.out, successStyle.Render(line))
		if res.ClearedDue > 0 {
			fmt.Fprintf(r.out, "  cleared due dates from %d other tasks\n", res.ClearedDue)
		}
		if res.LabelApplied {
			fmt.Fprintln(r.out, "  applied promote label")
		}
	case queue.StatusEmpty:
		fmt.Fprintln(r.out, infoStyle.Render(fmt.Sprintf("info: %s has no tasks", res.Project)))
	case queue.StatusProjectNotFound:
		fmt.Fprintln(r.errOut, errorStyle.Render(fmt.Sprintf("error: project %q not found", res.Project)))
	case queue.StatusError:
		fmt.Fprintln(r.errOut, errorStyle.Render(fmt.Sprintf("error: %s - %v", res.Project, res.Err)))
	}
}

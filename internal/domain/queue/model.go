package queue

// Config describes one managed queue. Immutable for the duration of a run.
type Config struct {
	// Project is a project name or a slash-delimited path such as
	// "Chores/Rotating Chore Queue".
	Project string
	// DueString is the natural-language due expression applied to the head
	// task, e.g. "today" or "tomorrow 9am".
	DueString string
	// DueLang is the locale Todoist uses to parse DueString.
	DueLang string
	// PromoteLabel, when set, is attached to the head task for visibility.
	PromoteLabel string
	// ClearDueOnRest removes due dates from every non-head task that has one.
	ClearDueOnRest bool
}

// Status classifies the outcome of promoting one queue.
type Status string

const (
	StatusPromoted        Status = "promoted"
	StatusEmpty           Status = "empty"
	StatusProjectNotFound Status = "project_not_found"
	StatusError           Status = "error"
)

// Result summarizes one queue promotion.
type Result struct {
	Project      string
	Status       Status
	PromotedTask string
	ClearedDue   int
	LabelApplied bool
	Err          error
}

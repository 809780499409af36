package todoist

// Project is a Todoist project. ParentID is empty for top-level projects.
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

// Task is an active (non-completed) Todoist task. CreatedAt is kept as the
// ISO-8601 wire string; the format is zero-padded and zone-normalized, so
// lexicographic comparison is chronological.
type Task struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	ProjectID string   `json:"project_id"`
	CreatedAt string   `json:"created_at"`
	Due       *Due     `json:"due,omitempty"`
	Labels    []string `json:"labels,omitempty"`
}

// Due describes a task's due date as returned by the API.
type Due struct {
	Date        string `json:"date,omitempty"`
	Datetime    string `json:"datetime,omitempty"`
	String      string `json:"string,omitempty"`
	Lang        string `json:"lang,omitempty"`
	IsRecurring bool   `json:"is_recurring,omitempty"`
}

// Label is a personal Todoist label.
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UpdateTaskArgs holds the fields an update may set. Zero-valued fields are
// omitted from the request body; DueString "no due date" clears the due date.
type UpdateTaskArgs struct {
	DueString string   `json:"due_string,omitempty"`
	DueLang   string   `json:"due_lang,omitempty"`
	Labels    []string `json:"labels,omitempty"`
}

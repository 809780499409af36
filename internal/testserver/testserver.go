// Package testserver provides an in-memory fake of the Todoist REST v2 API
// for client and integration tests.
package testserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/graceolivia/ToDoistChoreQueue/internal/todoist"
)

// Update records one task mutation received by the fake server.
type Update struct {
	TaskID    string
	DueString string
	DueLang   string
	Labels    []string
	SetLabels bool
}

// Server is a fake Todoist API backed by in-memory state. Mutations are
// applied to the stored tasks and recorded for assertions.
type Server struct {
	Server *httptest.Server
	Token  string

	mu         sync.Mutex
	projects   []todoist.Project
	tasks      []*todoist.Task
	labels     []todoist.Label
	labelLists int
	updates    []Update
	nextID     int
}

// New starts a fake server that requires the given bearer token.
func New(t *testing.T, token string) *Server {
	t.Helper()

	s := &Server{Token: token}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /projects", s.handleListProjects)
	mux.HandleFunc("GET /tasks", s.handleListTasks)
	mux.HandleFunc("POST /tasks/{id}", s.handleUpdateTask)
	mux.HandleFunc("GET /labels", s.handleListLabels)
	mux.HandleFunc("POST /labels", s.handleCreateLabel)

	s.Server = httptest.NewServer(s.requireAuth(mux))
	t.Cleanup(s.Server.Close)

	return s
}

// URL returns the base URL clients should point at.
func (s *Server) URL() string {
	return s.Server.URL
}

// AddProject registers a project. parentID is empty for roots.
func (s *Server) AddProject(name, parentID string) todoist.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := todoist.Project{ID: s.newID("p"), Name: name, ParentID: parentID}
	s.projects = append(s.projects, p)
	return p
}

// AddTask registers an active task in a project.
func (s *Server) AddTask(projectID, content, createdAt string, due *todoist.Due) todoist.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := &todoist.Task{
		ID:        s.newID("t"),
		Content:   content,
		ProjectID: projectID,
		CreatedAt: createdAt,
		Due:       due,
	}
	s.tasks = append(s.tasks, task)
	return *task
}

// AddLabel registers a personal label.
func (s *Server) AddLabel(name string) todoist.Label {
	s.mu.Lock()
	defer s.mu.Unlock()
	label := todoist.Label{ID: s.newID("l"), Name: name}
	s.labels = append(s.labels, label)
	return label
}

// Task returns the current state of a stored task.
func (s *Server) Task(id string) (todoist.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return *task, true
		}
	}
	return todoist.Task{}, false
}

// Tasks returns the current state of every stored task.
func (s *Server) Tasks() []todoist.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]todoist.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		out = append(out, *task)
	}
	return out
}

// Updates returns every task mutation received so far.
func (s *Server) Updates() []Update {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Update(nil), s.updates...)
}

// LabelListCalls counts GET /labels requests, for cache assertions.
func (s *Server) LabelListCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.labelLists
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if strings.TrimPrefix(auth, "Bearer ") != s.Token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleListProjects(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	projects := append([]todoist.Project(nil), s.projects...)
	s.mu.Unlock()
	writeJSON(w, projects)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("project_id")
	s.mu.Lock()
	tasks := []todoist.Task{}
	for _, task := range s.tasks {
		if projectID == "" || task.ProjectID == projectID {
			tasks = append(tasks, *task)
		}
	}
	s.mu.Unlock()
	writeJSON(w, tasks)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var body struct {
		DueString *string   `json:"due_string"`
		DueLang   *string   `json:"due_lang"`
		Labels    *[]string `json:"labels"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var task *todoist.Task
	for _, t := range s.tasks {
		if t.ID == id {
			task = t
			break
		}
	}
	if task == nil {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}

	update := Update{TaskID: id}
	if body.DueString != nil {
		update.DueString = *body.DueString
		if *body.DueString == "no due date" {
			task.Due = nil
		} else {
			due := &todoist.Due{String: *body.DueString}
			if body.DueLang != nil {
				due.Lang = *body.DueLang
			}
			task.Due = due
		}
	}
	if body.DueLang != nil {
		update.DueLang = *body.DueLang
	}
	if body.Labels != nil {
		update.Labels = append([]string(nil), (*body.Labels)...)
		update.SetLabels = true
		task.Labels = append([]string(nil), (*body.Labels)...)
	}
	s.updates = append(s.updates, update)

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListLabels(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.labelLists++
	labels := append([]todoist.Label(nil), s.labels...)
	s.mu.Unlock()
	writeJSON(w, labels)
}

func (s *Server) handleCreateLabel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	label := todoist.Label{ID: s.newID("l"), Name: body.Name}
	s.labels = append(s.labels, label)
	s.mu.Unlock()

	writeJSON(w, label)
}

// newID must be called with s.mu held.
func (s *Server) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s%d", prefix, s.nextID)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

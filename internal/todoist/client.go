package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// DefaultBaseURL is the Todoist REST v2 endpoint.
const DefaultBaseURL = "https://api.todoist.com/rest/v2"

const (
	requestTimeout   = 30 * time.Second
	maxResponseBytes = 4 * 1024 * 1024
)

// Client is a thin wrapper over the Todoist REST API. It holds no state
// beyond a label cache scoped to the client instance; all task and project
// data is fetched fresh per call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger

	// labelCache is nil until the first label lookup and is invalidated
	// after every create so labels added elsewhere are picked up.
	labelCache []Label
}

// NewClient creates a client authenticating with the given bearer token.
// baseURL falls back to DefaultBaseURL when empty.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		logger:     logger,
	}
}

// ListProjects returns all projects in API listing order.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListTasks returns the active tasks of one project. The endpoint filters
// out completed tasks server-side.
func (c *Client) ListTasks(ctx context.Context, projectID string) ([]Task, error) {
	query := url.Values{"project_id": {projectID}}
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", query, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask applies the given fields to a task. Todoist uses POST for
// updates.
func (c *Client) UpdateTask(ctx context.Context, id string, args UpdateTaskArgs) error {
	return c.do(ctx, http.MethodPost, "/tasks/"+id, nil, args, nil)
}

// ListLabels returns all personal labels.
func (c *Client) ListLabels(ctx context.Context) ([]Label, error) {
	var labels []Label
	if err := c.do(ctx, http.MethodGet, "/labels", nil, nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// CreateLabel creates a personal label and returns it.
func (c *Client) CreateLabel(ctx context.Context, name string) (Label, error) {
	var label Label
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/labels", nil, body, &label); err != nil {
		return Label{}, err
	}
	return label, nil
}

// EnsureLabel resolves a label by case-insensitive name, creating it when
// missing. Lookups go through the client's label cache; the cache is
// invalidated after a create.
func (c *Client) EnsureLabel(ctx context.Context, name string) (Label, error) {
	name = strings.TrimLeftFunc(name, unicode.IsSpace)
	if name == "" {
		return Label{}, ErrEmptyLabelName
	}

	labels, err := c.labels(ctx)
	if err != nil {
		return Label{}, err
	}
	for _, label := range labels {
		if strings.EqualFold(label.Name, name) {
			return label, nil
		}
	}

	created, err := c.CreateLabel(ctx, name)
	if err != nil {
		return Label{}, err
	}
	c.labelCache = nil
	c.logger.Info("created label", "name", created.Name, "id", created.ID)
	return created, nil
}

func (c *Client) labels(ctx context.Context) ([]Label, error) {
	if c.labelCache == nil {
		labels, err := c.ListLabels(ctx)
		if err != nil {
			return nil, err
		}
		if labels == nil {
			labels = []Label{}
		}
		c.labelCache = labels
	}
	return c.labelCache, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Debug("request failed",
			"method", method, "path", path, "status", resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

package todoist

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client is a thin wrapper over the Todoist REST API. It does not cache.
type Client struct {
	rc *resty.Client
}

// NewClient builds a client on top of an authenticated *http.Client
// (see auth.GetClient). baseURL is usually config.DefaultTodoistURL.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	rc := resty.NewWithClient(httpClient).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	return &Client{rc: rc}
}

// GetProjects lists every project.
func (c *Client) GetProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, fmt.Errorf("failed to list todoist projects: %w", err)
	}
	return projects, nil
}

// GetTasks lists every active task.
func (c *Client) GetTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list todoist tasks: %w", err)
	}
	return tasks, nil
}

func (c *Client) AddProject(ctx context.Context, args AddProjectArgs) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPost, "/projects", args, &project); err != nil {
		return nil, fmt.Errorf("failed to create todoist project %q: %w", args.Name, err)
	}
	return &project, nil
}

func (c *Client) AddTask(ctx context.Context, args AddTaskArgs) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/tasks", args, &task); err != nil {
		return nil, fmt.Errorf("failed to create todoist task %q: %w", args.Content, err)
	}
	return &task, nil
}

// CloseTask completes a task. Closing a parent also closes its sub-tasks.
func (c *Client) CloseTask(ctx context.Context, id string) error {
	path := "/tasks/" + url.PathEscape(id) + "/close"
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to close todoist task %s: %w", id, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	req := c.rc.R().SetContext(ctx)
	if method != http.MethodGet {
		// Todoist drops a repeated write carrying the same request id.
		req.SetHeader("X-Request-Id", uuid.NewString())
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}
	return nil
}

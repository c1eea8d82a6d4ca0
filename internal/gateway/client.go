package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/goal"
	"github.com/weekplan/weekplan-lambda/internal/task"
)

const DefaultBaseURL = "http://localhost:3001/api"

// Client talks to the REST backend: GET/POST /events, PUT/DELETE
// /events/{id}, GET /goals, GET /tasks?goalId=.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ Gateway = (*Client)(nil)

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Error bodies carry {"message": "..."} when the backend speaks JSON.
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Message == "" {
			payload.Message = "something went wrong"
		}
		return &Error{Message: payload.Message, StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) FetchEvents(ctx context.Context) ([]event.Event, error) {
	var events []event.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, draft event.Event) (*event.Event, error) {
	draft.ID = ""
	var created event.Event
	if err := c.do(ctx, http.MethodPost, "/events", draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateEvent(ctx context.Context, ev event.Event) (*event.Event, error) {
	var updated event.Event
	path := fmt.Sprintf("/events/%s", url.PathEscape(ev.ID))
	if err := c.do(ctx, http.MethodPut, path, ev, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	path := fmt.Sprintf("/events/%s", url.PathEscape(id))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) FetchGoals(ctx context.Context) ([]goal.Goal, error) {
	var goals []goal.Goal
	if err := c.do(ctx, http.MethodGet, "/goals", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (c *Client) FetchTasks(ctx context.Context, goalID string) ([]task.Task, error) {
	path := "/tasks"
	if goalID != "" {
		path += "?goalId=" + url.QueryEscape(goalID)
	}
	var tasks []task.Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Package googletasks implements service.Service on the Google Tasks API.
package googletasks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"todo/internal/config"
	"todo/internal/service"
)

const (
	// DefaultListID addresses the user's default list in API paths.
	DefaultListID = "@default"

	// APITimeout bounds each API round trip.
	APITimeout = 5 * time.Second

	// Scope is the OAuth scope for Google Tasks.
	Scope = "https://www.googleapis.com/auth/tasks"

	statusCompleted   = "completed"
	statusNeedsAction = "needsAction"
)

// ErrNotFound is returned when the API answers 404.
var ErrNotFound = errors.New("not found")

// Client implements service.Service.
type Client struct {
	svc *tasks.Service
}

// New builds a Client from the credentials in cfg's directory.
// oauth_client.json and token.json must both exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	oc, err := LoadOAuthConfig(cfg.OAuthClientPath())
	if err != nil {
		return nil, err
	}
	tok, err := LoadToken(cfg.TokenPath())
	if err != nil {
		return nil, err
	}
	// The token source refreshes the access token as needed
	return NewWithHTTPClient(ctx, oauth2.NewClient(ctx, oc.TokenSource(ctx, tok)))
}

// NewWithHTTPClient builds a Client on httpClient. Extra options are applied
// after it, e.g. option.WithEndpoint in tests.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// DefaultList returns the user's default task list.
func (c *Client) DefaultList(ctx context.Context) (service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	list, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return service.TaskList{}, wrapError(err)
	}
	return service.TaskList{ID: DefaultListID, Title: list.Title, IsDefault: true}, nil
}

// ListLists returns all task lists in API order. The default list is
// reported under DefaultListID.
func (c *Client) ListLists(ctx context.Context) ([]service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	def, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}

	var lists []service.TaskList
	err = c.svc.Tasklists.List().MaxResults(100).Pages(ctx, func(page *tasks.TaskLists) error {
		for _, item := range page.Items {
			l := service.TaskList{ID: item.Id, Title: item.Title}
			if item.Id == def.Id {
				l.ID = DefaultListID
				l.IsDefault = true
			}
			lists = append(lists, l)
		}
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return lists, nil
}

// ResolveList finds a list by name.
func (c *Client) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	lists, err := c.ListLists(ctx)
	if err != nil {
		return service.TaskList{}, err
	}
	return MatchList(lists, name)
}

// MatchList picks the list whose trimmed title equals name, ignoring case.
func MatchList(lists []service.TaskList, name string) (service.TaskList, error) {
	name = strings.TrimSpace(name)

	var found []service.TaskList
	for _, l := range lists {
		if strings.EqualFold(strings.TrimSpace(l.Title), name) {
			found = append(found, l)
		}
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrListNotFound, name)
	default:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrAmbiguousList, name)
	}
}

// CreateTask inserts t into the list.
func (c *Client) CreateTask(ctx context.Context, listID string, t service.RemoteTask) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	remote := &tasks.Task{Title: t.Title, Notes: t.Notes, Status: statusNeedsAction}
	if t.Completed {
		remote.Status = statusCompleted
	}
	if _, err := c.svc.Tasks.Insert(listID, remote).Context(ctx).Do(); err != nil {
		return wrapError(err)
	}
	return nil
}

// wrapError turns API failures into messages that point at a fix.
func wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New("request timed out")
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return errors.New("token expired or revoked (run: todo login)")
		case http.StatusNotFound:
			return ErrNotFound
		}
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("token refresh failed (run: todo login): %w", err)
	}
	return err
}

// Package activities contains the routers for the oTask activities API.
package activities

import (
	"context"
	"errors"
	"net/url"

	"github.com/odesk/odesk-go/internal/model"
	"github.com/odesk/odesk-go/internal/runtimex"
)

// EntryPoint is the entry point used by this router.
const EntryPoint = "api"

// APIClient is the API client used by [*User].
type APIClient interface {
	SetEntryPoint(name string)
	Get(ctx context.Context, path string, params model.Params) (model.Result, error)
	Post(ctx context.Context, path string, params model.Params) (model.Result, error)
	Put(ctx context.Context, path string, params model.Params) (model.Result, error)
	Delete(ctx context.Context, path string) (model.Result, error)
}

var (
	// ErrEmptyIdentifier indicates that the company, team, or username is empty.
	ErrEmptyIdentifier = errors.New("activities: empty company, team, or username")

	// ErrEmptyCode indicates that an operation requiring an activity code got an empty code.
	ErrEmptyCode = errors.New("activities: empty activity code")
)

// User is the router for the activities of a specific user.
type User struct {
	client APIClient
}

// NewUser creates a new [*User] router using the given client. It panics
// if the client is nil.
func NewUser(client APIClient) *User {
	runtimex.PanicIfNil(client, "activities: nil client")
	client.SetEntryPoint(EntryPoint)
	return &User{client: client}
}

// List lists all the activities of the user.
func (u *User) List(ctx context.Context, company, team, username string) (model.Result, error) {
	return u.getByType(ctx, company, team, username, "", false)
}

// FullList lists all the activities of the user including the full details.
func (u *User) FullList(ctx context.Context, company, team, username string) (model.Result, error) {
	return u.getByType(ctx, company, team, username, "", true)
}

// SpecificList returns the activity with the given code.
func (u *User) SpecificList(ctx context.Context, company, team, username, code string) (model.Result, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	return u.getByType(ctx, company, team, username, code, false)
}

// AddActivity creates a new activity using params as the body.
func (u *User) AddActivity(
	ctx context.Context, company, team, username string, params model.Params) (model.Result, error) {
	path, err := tasksPath(company, team, username)
	if err != nil {
		return nil, err
	}
	return u.client.Post(ctx, path, params)
}

// UpdateActivity updates the activity with the given code using params as the body.
func (u *User) UpdateActivity(
	ctx context.Context, company, team, username, code string, params model.Params) (model.Result, error) {
	path, err := taskPath(company, team, username, code)
	if err != nil {
		return nil, err
	}
	return u.client.Put(ctx, path, params)
}

// DeleteActivity deletes the activity with the given code.
func (u *User) DeleteActivity(ctx context.Context, company, team, username, code string) (model.Result, error) {
	path, err := taskPath(company, team, username, code)
	if err != nil {
		return nil, err
	}
	return u.client.Delete(ctx, path)
}

// DeleteAllActivities deletes all the activities of the user.
func (u *User) DeleteAllActivities(ctx context.Context, company, team, username string) (model.Result, error) {
	path, err := tasksPath(company, team, username)
	if err != nil {
		return nil, err
	}
	return u.client.Delete(ctx, path+"/all_tasks")
}

func (u *User) getByType(
	ctx context.Context, company, team, username, code string, isFull bool) (model.Result, error) {
	path, err := tasksPath(company, team, username)
	if err != nil {
		return nil, err
	}
	return u.client.Get(ctx, path+listSuffix(code, isFull), nil)
}

// listSuffix selects the suffix of the tasks path for GET requests. The full
// list wins over the code; an empty code selects the whole collection.
func listSuffix(code string, isFull bool) string {
	switch {
	case isFull:
		return "/full_list"
	case code != "":
		return "/" + url.PathEscape(code)
	default:
		return ""
	}
}

// tasksPath returns the path of the tasks collection.
func tasksPath(company, team, username string) (string, error) {
	if company == "" || team == "" || username == "" {
		return "", ErrEmptyIdentifier
	}
	path := "/otask/v1/tasks/companies/" + url.PathEscape(company) +
		"/teams/" + url.PathEscape(team) +
		"/users/" + url.PathEscape(username) + "/tasks"
	return path, nil
}

// taskPath returns the path of a single task.
func taskPath(company, team, username, code string) (string, error) {
	path, err := tasksPath(company, team, username)
	if err != nil {
		return "", err
	}
	if code == "" {
		return "", ErrEmptyCode
	}
	return path + "/" + url.PathEscape(code), nil
}

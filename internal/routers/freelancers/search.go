// Package freelancers contains the routers for the freelancers API.
package freelancers

import (
	"context"

	"github.com/odesk/odesk-go/internal/model"
	"github.com/odesk/odesk-go/internal/runtimex"
)

// EntryPoint is the entry point used by this router.
const EntryPoint = "api"

// SearchPath is the path of the providers search API.
const SearchPath = "/profiles/v2/search/providers"

// APIClient is the API client used by [*Search].
type APIClient interface {
	SetEntryPoint(name string)
	Get(ctx context.Context, path string, params model.Params) (model.Result, error)
}

// Search is the router for searching freelancers.
type Search struct {
	client APIClient
}

// NewSearch creates a new [*Search] router using the given client. It panics
// if the client is nil.
func NewSearch(client APIClient) *Search {
	runtimex.PanicIfNil(client, "freelancers: nil client")
	client.SetEntryPoint(EntryPoint)
	return &Search{client: client}
}

// Find searches for freelancers using params as the query string. An
// empty params map produces a request without query string.
func (s *Search) Find(ctx context.Context, params model.Params) (model.Result, error) {
	return s.client.Get(ctx, SearchPath, params)
}

package mocks

import (
	"context"

	"github.com/odesk/odesk-go/internal/model"
)

// APIClient allows mocking the shared oDesk API client.
type APIClient struct {
	MockSetEntryPoint func(name string)

	MockGet func(ctx context.Context, path string, params model.Params) (model.Result, error)

	MockPost func(ctx context.Context, path string, params model.Params) (model.Result, error)

	MockPut func(ctx context.Context, path string, params model.Params) (model.Result, error)

	MockDelete func(ctx context.Context, path string) (model.Result, error)
}

// SetEntryPoint calls MockSetEntryPoint.
func (c *APIClient) SetEntryPoint(name string) {
	c.MockSetEntryPoint(name)
}

// Get calls MockGet.
func (c *APIClient) Get(ctx context.Context, path string, params model.Params) (model.Result, error) {
	return c.MockGet(ctx, path, params)
}

// Post calls MockPost.
func (c *APIClient) Post(ctx context.Context, path string, params model.Params) (model.Result, error) {
	return c.MockPost(ctx, path, params)
}

// Put calls MockPut.
func (c *APIClient) Put(ctx context.Context, path string, params model.Params) (model.Result, error) {
	return c.MockPut(ctx, path, params)
}

// Delete calls MockDelete.
func (c *APIClient) Delete(ctx context.Context, path string) (model.Result, error) {
	return c.MockDelete(ctx, path)
}

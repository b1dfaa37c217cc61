// Package odesk is the public entry point of the oDesk API SDK.
//
// Create a [*Client] with [NewClient], then use the routers it exposes:
//
//	clnt, err := odesk.NewClient(&odesk.Config{
//		ConsumerKey:    "...",
//		ConsumerSecret: "...",
//		AccessToken:    "...",
//		AccessSecret:   "...",
//	})
//	if err != nil {
//		// handle error
//	}
//	result, err := clnt.Search().Find(ctx, odesk.Params{"q": "golang"})
//
// All the routers share the same underlying HTTP client.
package odesk

import (
	"github.com/odesk/odesk-go/internal/model"
	"github.com/odesk/odesk-go/internal/oauthclient"
	"github.com/odesk/odesk-go/internal/routers/activities"
	"github.com/odesk/odesk-go/internal/routers/freelancers"
)

// Config contains the client configuration.
type Config = oauthclient.Config

// Params contains the parameters of an API call.
type Params = model.Params

// Result is the JSON object returned by an API call.
type Result = model.Result

// Logger is the logger interface. The apex/log logger implements it.
type Logger = model.Logger

// ActivitiesUser is the router for the activities of a user.
type ActivitiesUser = activities.User

// FreelancersSearch is the router for searching freelancers.
type FreelancersSearch = freelancers.Search

// Client is the oDesk API client. Construct using [NewClient].
type Client struct {
	api *oauthclient.Client
}

// NewClient creates a new [*Client].
func NewClient(config *Config) (*Client, error) {
	api, err := oauthclient.New(config)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

// Activities returns the router for the activities of a user.
func (c *Client) Activities() *ActivitiesUser {
	return activities.NewUser(c.api)
}

// Search returns the router for searching freelancers.
func (c *Client) Search() *FreelancersSearch {
	return freelancers.NewSearch(c.api)
}

// CloseIdleConnections closes the idle connections of the underlying transport.
func (c *Client) CloseIdleConnections() {
	c.api.CloseIdleConnections()
}

package oauthclient

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/dghubble/oauth1"
	"github.com/odesk/odesk-go/internal/httpapi"
	"github.com/odesk/odesk-go/internal/model"
)

// DataFormat is the format we request by appending it as an extension
// to every resource path.
const DataFormat = "json"

// OverloadParam is the body field carrying the real method when
// [Config.MethodOverride] is set.
const OverloadParam = "http_method"

// ErrMissingConsumerCredentials indicates that the consumer key or secret is empty.
var ErrMissingConsumerCredentials = errors.New("oauthclient: missing consumer key or secret")

// Client is the shared oDesk API client. Construct using [New].
//
// A Client is safe for concurrent use. However, changing the entry point
// while there are in-flight calls affects which base URL these calls use
// and is therefore not supported.
type Client struct {
	baseURL        string
	entryPoint     string
	httpClient     model.HTTPClient
	logBody        bool
	logger         model.Logger
	methodOverride bool
	mu             sync.Mutex
	userAgent      string
}

// New creates a new [*Client] from the given [*Config].
func New(config *Config) (*Client, error) {
	if config.ConsumerKey == "" || config.ConsumerSecret == "" {
		return nil, ErrMissingConsumerCredentials
	}
	baseClient := config.HTTPClient
	if baseClient == nil {
		baseClient = http.DefaultClient
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = model.HTTPHeaderUserAgent
	}
	// the oauth1 package picks the base transport from the context
	ctx := context.WithValue(context.Background(), oauth1.HTTPClient, baseClient)
	oauthConfig := oauth1.NewConfig(config.ConsumerKey, config.ConsumerSecret)
	token := oauth1.NewToken(config.AccessToken, config.AccessSecret)
	clnt := &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		entryPoint:     "",
		httpClient:     oauthConfig.Client(ctx, token),
		logBody:        config.LogBody,
		logger:         model.ValidLoggerOrDefault(config.Logger),
		methodOverride: config.MethodOverride,
		userAgent:      userAgent,
	}
	return clnt, nil
}

// SetEntryPoint selects the API gateway used by subsequent calls (e.g., "api").
func (c *Client) SetEntryPoint(name string) {
	defer c.mu.Unlock()
	c.mu.Lock()
	c.entryPoint = name
}

// EntryPoint returns the currently selected entry point.
func (c *Client) EntryPoint() string {
	defer c.mu.Unlock()
	c.mu.Lock()
	return c.entryPoint
}

// CloseIdleConnections closes the idle connections of the underlying transport.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// Get sends a GET request for |path| using |params| as the query string.
func (c *Client) Get(ctx context.Context, path string, params model.Params) (model.Result, error) {
	desc := httpapi.NewGETJSONWithQueryDescriptor(c.resourcePath(path), params.Values())
	return c.call(ctx, desc)
}

// Post sends a POST request for |path| using |params| as the body.
func (c *Client) Post(ctx context.Context, path string, params model.Params) (model.Result, error) {
	return c.sendBody(ctx, http.MethodPost, path, params)
}

// Put sends a PUT request for |path| using |params| as the body.
func (c *Client) Put(ctx context.Context, path string, params model.Params) (model.Result, error) {
	if c.methodOverride {
		return c.sendOverloaded(ctx, "put", path, params)
	}
	return c.sendBody(ctx, http.MethodPut, path, params)
}

// Delete sends a DELETE request for |path|.
func (c *Client) Delete(ctx context.Context, path string) (model.Result, error) {
	if c.methodOverride {
		return c.sendOverloaded(ctx, "delete", path, nil)
	}
	return c.call(ctx, httpapi.NewDELETEJSONDescriptor(c.resourcePath(path)))
}

func (c *Client) sendOverloaded(
	ctx context.Context, method, path string, params model.Params) (model.Result, error) {
	params = params.Clone()
	params[OverloadParam] = method
	return c.sendBody(ctx, http.MethodPost, path, params)
}

func (c *Client) sendBody(
	ctx context.Context, method, path string, params model.Params) (model.Result, error) {
	// make sure we never send a literal JSON null
	desc, err := httpapi.NewJSONBodyDescriptor(method, c.resourcePath(path), params.Clone())
	if err != nil {
		return nil, err
	}
	return c.call(ctx, desc)
}

func (c *Client) call(ctx context.Context, desc *httpapi.Descriptor) (model.Result, error) {
	var result model.Result
	err := httpapi.CallWithJSONResponse(ctx, desc.WithBodyLogging(c.logBody), c.endpoint(), &result)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = model.Result{}
	}
	return result, nil
}

// endpoint returns the [*httpapi.Endpoint] for the current entry point.
func (c *Client) endpoint() *httpapi.Endpoint {
	baseURL := c.baseURL
	if entryPoint := c.EntryPoint(); entryPoint != "" {
		baseURL += "/" + entryPoint
	}
	return &httpapi.Endpoint{
		BaseURL:    baseURL,
		HTTPClient: c.httpClient,
		Logger:     c.logger,
		UserAgent:  c.userAgent,
	}
}

// resourcePath appends the data format extension to |path|.
func (c *Client) resourcePath(path string) string {
	return path + "." + DataFormat
}

package oauthclient

import (
	"net/http"

	"github.com/odesk/odesk-go/internal/model"
)

// DefaultBaseURL is the default oDesk API base URL.
const DefaultBaseURL = "https://www.odesk.com"

// Config contains configuration for [New].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// AccessToken is the OPTIONAL OAuth access token.
	AccessToken string

	// AccessSecret is the OPTIONAL OAuth access token secret.
	AccessSecret string

	// BaseURL is the OPTIONAL base URL. When empty, we use [DefaultBaseURL].
	BaseURL string

	// ConsumerKey is the MANDATORY OAuth consumer key.
	ConsumerKey string

	// ConsumerSecret is the MANDATORY OAuth consumer secret.
	ConsumerSecret string

	// HTTPClient is the OPTIONAL [*http.Client] whose transport we wrap
	// with OAuth signing. When nil, we use [http.DefaultClient].
	HTTPClient *http.Client

	// LogBody OPTIONALLY enables logging request and response bodies.
	LogBody bool

	// Logger is the OPTIONAL [model.Logger] to use.
	Logger model.Logger

	// MethodOverride OPTIONALLY tunnels PUT and DELETE through POST
	// requests carrying the [OverloadParam] body field.
	MethodOverride bool

	// UserAgent is the OPTIONAL User-Agent header value to use. When
	// empty, we use [model.HTTPHeaderUserAgent].
	UserAgent string
}

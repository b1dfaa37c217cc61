package httpapi

//
// HTTP API Endpoint (e.g., https://www.odesk.com/api)
//

import "github.com/odesk/odesk-go/internal/model"

// Endpoint models an HTTP endpoint on which you can call
// several HTTP APIs (e.g., https://www.odesk.com/api)
// using a given HTTP client and logger.
//
// The zero value of this struct is invalid. Please, fill all the
// fields marked as MANDATORY for correct initialization.
type Endpoint struct {
	// BaseURL is the MANDATORY endpoint base URL. We will honour the
	// path of this URL and prepend it to the actual path specified inside
	// a |Descriptor.URLPath|. However, we will always discard any query
	// that may have been set inside the BaseURL. The only query string
	// will be composed from the |Descriptor.URLQuery| values.
	BaseURL string

	// HTTPClient is the MANDATORY HTTP client to use. Note that the
	// client is responsible for signing requests, if needed.
	HTTPClient model.HTTPClient

	// Logger is the MANDATORY logger to use.
	Logger model.Logger

	// UserAgent is the OPTIONAL user agent to use.
	UserAgent string
}

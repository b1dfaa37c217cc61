package model

//
// Common HTTP definitions.
//

import "net/http"

// HTTPHeaderUserAgent is the default User-Agent header we send to the API.
const HTTPHeaderUserAgent = "odesk-go/1.0"

// HTTPClient is the interface of a generic HTTP client. The
// stdlib's [*http.Client] implements this interface.
type HTTPClient interface {
	// Do should work like [*http.Client.Do].
	Do(req *http.Request) (*http.Response, error)

	// CloseIdleConnections should work like [*http.Client.CloseIdleConnections].
	CloseIdleConnections()
}

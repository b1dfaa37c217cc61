package httpapi

//
// HTTP API descriptor (e.g., GET /profiles/v2/search/providers.json)
//

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// Descriptor contains the parameters for calling a given HTTP
// API (e.g., GET /profiles/v2/search/providers.json).
//
// The zero value of this struct is invalid. Please, fill all the
// fields marked as MANDATORY for correct initialization.
type Descriptor struct {
	// Accept contains the OPTIONAL accept header.
	Accept string

	// ContentType is the OPTIONAL content-type header.
	ContentType string

	// LogBody OPTIONALLY enables logging bodies.
	LogBody bool

	// MaxBodySize is the OPTIONAL maximum response body size. If
	// not set, we use the |DefaultMaxBodySize| constant.
	MaxBodySize int64

	// Method is the MANDATORY request method.
	Method string

	// RequestBody is the OPTIONAL request body.
	RequestBody []byte

	// Timeout is the OPTIONAL timeout for this call. If no timeout
	// is specified we will use the |DefaultCallTimeout| const.
	Timeout time.Duration

	// URLPath is the MANDATORY URL path.
	URLPath string

	// URLQuery is the OPTIONAL query.
	URLQuery url.Values
}

// WithBodyLogging returns a SHALLOW COPY of |Descriptor| with LogBody set to |value|. You SHOULD
// only use this method when initializing the descriptor you want to use.
func (desc *Descriptor) WithBodyLogging(value bool) *Descriptor {
	out := &Descriptor{}
	*out = *desc
	out.LogBody = value
	return out
}

// DefaultMaxBodySize is the default value for the maximum
// body size you can fetch using the httpapi package.
const DefaultMaxBodySize = 1 << 22

// DefaultCallTimeout is the default timeout for an httpapi call.
const DefaultCallTimeout = 60 * time.Second

// ApplicationJSON is the content-type for JSON
const ApplicationJSON = "application/json"

// NewGETJSONWithQueryDescriptor is a convenience factory for creating a new
// descriptor that uses the GET method, sends the given |query| arguments, and
// expects a JSON response. A nil or empty |query| sends no query string.
func NewGETJSONWithQueryDescriptor(urlPath string, query url.Values) *Descriptor {
	return &Descriptor{
		Accept:      ApplicationJSON,
		ContentType: "",
		LogBody:     false,
		MaxBodySize: DefaultMaxBodySize,
		Method:      http.MethodGet,
		RequestBody: nil,
		Timeout:     DefaultCallTimeout,
		URLPath:     urlPath,
		URLQuery:    query,
	}
}

// NewJSONBodyDescriptor creates a descriptor that sends a JSON document using
// the given |method| (e.g., POST, PUT) and expects a JSON document back.
//
// This function ONLY fails if we cannot serialize the |request| to JSON.
func NewJSONBodyDescriptor(method, urlPath string, request any) (*Descriptor, error) {
	rawRequest, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}
	desc := &Descriptor{
		Accept:      ApplicationJSON,
		ContentType: ApplicationJSON,
		LogBody:     false,
		MaxBodySize: DefaultMaxBodySize,
		Method:      method,
		RequestBody: rawRequest,
		Timeout:     DefaultCallTimeout,
		URLPath:     urlPath,
		URLQuery:    nil,
	}
	return desc, nil
}

// NewDELETEJSONDescriptor creates a descriptor that DELETEs the
// resource at |urlPath| and expects a JSON response.
func NewDELETEJSONDescriptor(urlPath string) *Descriptor {
	return &Descriptor{
		Accept:      ApplicationJSON,
		ContentType: "",
		LogBody:     false,
		MaxBodySize: DefaultMaxBodySize,
		Method:      http.MethodDelete,
		RequestBody: nil,
		Timeout:     DefaultCallTimeout,
		URLPath:     urlPath,
		URLQuery:    nil,
	}
}

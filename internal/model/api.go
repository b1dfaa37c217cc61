package model

//
// Data exchanged with the oDesk API.
//

import "net/url"

// Params contains the parameters of an API call. We send them as the
// query string of GET requests and as the body of POST and PUT requests.
//
// Keys are unique by construction; their order is irrelevant.
type Params map[string]string

// Values converts [Params] to [url.Values]. Each key appears exactly once.
func (p Params) Values() url.Values {
	out := url.Values{}
	for key, value := range p {
		out.Set(key, value)
	}
	return out
}

// Clone returns a copy of [Params] that the caller can modify. A nil
// [Params] clones to an empty, non-nil [Params].
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// Result is the JSON object returned by the API. We do not interpret it
// and we return it to the caller unmodified.
type Result map[string]any

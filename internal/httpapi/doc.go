// Package httpapi contains code for calling HTTP APIs.
//
// We model HTTP APIs as follows:
//
// 1. |Endpoint| is an API endpoint (e.g., https://www.odesk.com/api);
//
// 2. |Descriptor| describes the specific API you want to use (e.g.,
// GET /profiles/v2/search/providers.json with JSON response body).
//
// Use |CallWithJSONResponse| to invoke the API described by
// a |Descriptor| on the given |Endpoint|.
package httpapi

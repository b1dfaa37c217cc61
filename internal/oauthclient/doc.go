// Package oauthclient contains the HTTP client shared by all the oDesk API
// routers. The client signs requests using OAuth 1.0a, resolves the entry
// point (e.g., "api") into a base URL, and sends and receives JSON.
package oauthclient

// Package routers groups the oDesk API routers. Each sub-package maps one
// REST resource family (e.g., activities, freelancers) to Go methods that
// build the resource path and delegate to a shared API client.
package routers

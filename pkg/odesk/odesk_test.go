package odesk

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/odesk/odesk-go/internal/oauthclient"
)

// observed is a request observed by the fake API server.
type observed struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]string
}

// fakeAPI is a fake oDesk API server.
type fakeAPI struct {
	*httptest.Server
	mu       sync.Mutex
	requests []observed
}

func newFakeAPI(t *testing.T) *fakeAPI {
	api := &fakeAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Error(err)
		}
		req := observed{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.Query(),
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &req.Body); err != nil {
				t.Error(err)
			}
		}
		api.mu.Lock()
		api.requests = append(api.requests, req)
		api.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"server_time": "1402000000"}`))
	}))
	return api
}

func (api *fakeAPI) last(t *testing.T) observed {
	defer api.mu.Unlock()
	api.mu.Lock()
	if len(api.requests) <= 0 {
		t.Fatal("no requests")
	}
	return api.requests[len(api.requests)-1]
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	clnt, err := NewClient(&Config{
		AccessToken:    "at",
		AccessSecret:   "as",
		BaseURL:        api.URL,
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
	})
	if err != nil {
		t.Fatal(err)
	}
	return clnt
}

func TestNewClientFailure(t *testing.T) {
	clnt, err := NewClient(&Config{})
	if !errors.Is(err, oauthclient.ErrMissingConsumerCredentials) {
		t.Fatal("unexpected error", err)
	}
	if clnt != nil {
		t.Fatal("expected nil client")
	}
}

func TestActivitiesEndToEnd(t *testing.T) {
	api := newFakeAPI(t)
	defer api.Close()
	clnt := newTestClient(t, api)
	defer clnt.CloseIdleConnections()
	ctx := context.Background()
	const prefix = "/api/otask/v1/tasks/companies/acme/teams/t1/users/jdoe/tasks"

	t.Run("SpecificList", func(t *testing.T) {
		result, err := clnt.Activities().SpecificList(ctx, "acme", "t1", "jdoe", "C42")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(Result{"server_time": "1402000000"}, result); diff != "" {
			t.Fatal(diff)
		}
		expect := observed{Method: http.MethodGet, Path: prefix + "/C42.json", Query: url.Values{}}
		if diff := cmp.Diff(expect, api.last(t)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("AddActivity", func(t *testing.T) {
		_, err := clnt.Activities().AddActivity(ctx, "acme", "t1", "jdoe", Params{"memo": "standup"})
		if err != nil {
			t.Fatal(err)
		}
		expect := observed{
			Method: http.MethodPost,
			Path:   prefix + ".json",
			Query:  url.Values{},
			Body:   map[string]string{"memo": "standup"},
		}
		if diff := cmp.Diff(expect, api.last(t)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("DeleteAllActivities", func(t *testing.T) {
		_, err := clnt.Activities().DeleteAllActivities(ctx, "acme", "t1", "jdoe")
		if err != nil {
			t.Fatal(err)
		}
		expect := observed{Method: http.MethodDelete, Path: prefix + "/all_tasks.json", Query: url.Values{}}
		if diff := cmp.Diff(expect, api.last(t)); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestSearchEndToEnd(t *testing.T) {
	api := newFakeAPI(t)
	defer api.Close()
	clnt := newTestClient(t, api)
	ctx := context.Background()

	tests := []struct {
		name   string
		params Params
		want   url.Values
	}{{
		name:   "with nil params",
		params: nil,
		want:   url.Values{},
	}, {
		name:   "with empty params",
		params: Params{},
		want:   url.Values{},
	}, {
		name:   "with a single param",
		params: Params{"q": "engineer"},
		want:   url.Values{"q": {"engineer"}},
	}, {
		name:   "with many params",
		params: Params{"q": "golang", "skills": "go,sql", "page": "0;10"},
		want:   url.Values{"q": {"golang"}, "skills": {"go,sql"}, "page": {"0;10"}},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := clnt.Search().Find(ctx, tt.params); err != nil {
				t.Fatal(err)
			}
			req := api.last(t)
			if req.Path != "/api/profiles/v2/search/providers.json" {
				t.Fatal("unexpected path", req.Path)
			}
			if diff := cmp.Diff(tt.want, req.Query); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobfeed-engine/internal/common/config"
	stderrors "jobfeed-engine/internal/common/errors"
	"jobfeed-engine/internal/common/logger"
)

// ==========================
// Test Helpers
// ==========================

type stubIssue struct {
	Number      int64     `json:"number"`
	Title       string    `json:"title"`
	Body        *string   `json:"body"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	PullRequest *struct{} `json:"pull_request,omitempty"`
}

func strPtr(s string) *string { return &s }

func newTestClient(t *testing.T, server *httptest.Server, perPage int) *Client {
	t.Helper()
	return NewClient(config.TrackerConfig{
		BaseURL: server.URL,
		Owner:   "example-org",
		Repo:    "job-board",
		Token:   "test-token",
		Labels:  []string{"job-type", "approved"},
		PerPage: perPage,
		Timeout: 5000,
	}, logger.NewTestLogger(t))
}

// ==========================
// Client Tests
// ==========================

func TestFetchSubmissions_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/example-org/job-board/issues", r.URL.Path)
		assert.Equal(t, "open", r.URL.Query().Get("state"))
		assert.Equal(t, "job-type,approved", r.URL.Query().Get("labels"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode([]stubIssue{
			{Number: 1, Title: "Posting one", Body: strPtr("### Company Name\nAcme"), CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-02T00:00:00Z"},
			{Number: 2, Title: "Posting two", Body: nil, CreatedAt: "2024-01-03T00:00:00Z", UpdatedAt: "2024-01-04T00:00:00Z"},
		})
	}))
	defer server.Close()

	subs, err := newTestClient(t, server, 100).FetchSubmissions(context.Background())

	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, int64(1), subs[0].ID)
	assert.Equal(t, "### Company Name\nAcme", subs[0].Body)
	// Null body maps to an empty string, not a crash.
	assert.Equal(t, "", subs[1].Body)
}

func TestFetchSubmissions_Pagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		switch page {
		case "1":
			json.NewEncoder(w).Encode([]stubIssue{
				{Number: 1, Title: "one", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z"},
				{Number: 2, Title: "two", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z"},
			})
		case "2":
			json.NewEncoder(w).Encode([]stubIssue{
				{Number: 3, Title: "three", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z"},
			})
		default:
			t.Errorf("unexpected page %s", page)
			json.NewEncoder(w).Encode([]stubIssue{})
		}
	}))
	defer server.Close()

	subs, err := newTestClient(t, server, 2).FetchSubmissions(context.Background())

	require.NoError(t, err)
	assert.Len(t, subs, 3)
}

func TestFetchSubmissions_ExcludesPullRequestsAndDuplicates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]stubIssue{
			{Number: 1, Title: "real posting", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z"},
			{Number: 2, Title: "a pull request", PullRequest: &struct{}{}, CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z"},
			{Number: 1, Title: "real posting", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z"},
		})
	}))
	defer server.Close()

	subs, err := newTestClient(t, server, 100).FetchSubmissions(context.Background())

	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, int64(1), subs[0].ID)
}

func TestFetchSubmissions_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		headers  map[string]string
		wantCode stderrors.ErrorCode
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			wantCode: stderrors.ErrCodeTrackerAuthFailed,
		},
		{
			name:     "rate limited",
			status:   http.StatusForbidden,
			headers:  map[string]string{"X-RateLimit-Remaining": "0", "X-RateLimit-Reset": "1718400000"},
			wantCode: stderrors.ErrCodeTrackerRateLimited,
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			wantCode: stderrors.ErrCodeTrackerFetchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				fmt.Fprint(w, `{"message":"nope"}`)
			}))
			defer server.Close()

			_, err := newTestClient(t, server, 100).FetchSubmissions(context.Background())

			require.Error(t, err)
			stdErr, ok := err.(*stderrors.StandardError)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, stdErr.Code)
		})
	}
}

func TestFetchSubmissions_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"not":"an array"}`)
	}))
	defer server.Close()

	_, err := newTestClient(t, server, 100).FetchSubmissions(context.Background())

	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeTrackerFetchFailed, stdErr.Code)
}

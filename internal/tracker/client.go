// internal/tracker/client.go
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"jobfeed-engine/internal/common/config"
	"jobfeed-engine/internal/common/errors"
	"jobfeed-engine/internal/common/logger"
	"jobfeed-engine/internal/models"
)

// Client fetches job-posting submissions from a GitHub-style issue
// tracker. It is the core pipeline's only external supplier: it delivers
// a complete, deduplicated batch of open, approved, job-type issues with
// pull requests excluded, so the core never re-verifies label or open
// state.
type Client struct {
	baseURL    string
	owner      string
	repo       string
	token      string
	labels     []string
	perPage    int
	httpClient *http.Client
	logger     logger.Logger
}

// issue mirrors the subset of the tracker's issue payload the engine
// consumes. Body is a pointer because the API serializes absent bodies
// as null.
type issue struct {
	Number      int64     `json:"number"`
	Title       string    `json:"title"`
	Body        *string   `json:"body"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	PullRequest *struct{} `json:"pull_request,omitempty"`
}

func NewClient(cfg config.TrackerConfig, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		owner:   cfg.Owner,
		repo:    cfg.Repo,
		token:   cfg.Token,
		labels:  cfg.Labels,
		perPage: cfg.PerPage,
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
		logger: log,
	}
}

// FetchSubmissions pages through the tracker until a short page and
// returns the filtered batch. The comma-joined labels parameter selects
// issues carrying every configured label.
func (c *Client) FetchSubmissions(ctx context.Context) ([]models.RawSubmission, error) {
	var submissions []models.RawSubmission
	seen := map[int64]struct{}{}

	for page := 1; ; page++ {
		issues, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}

		for _, iss := range issues {
			body := ""
			if iss.Body != nil {
				body = *iss.Body
			}
			sub := models.RawSubmission{
				ID:            iss.Number,
				Title:         iss.Title,
				Body:          body,
				CreatedAt:     iss.CreatedAt,
				UpdatedAt:     iss.UpdatedAt,
				IsPullRequest: iss.PullRequest != nil,
			}

			if sub.IsPullRequest {
				c.logger.Debug("Skipping pull request artifact", map[string]interface{}{
					"number": sub.ID,
				})
				continue
			}
			if _, dup := seen[sub.ID]; dup {
				continue
			}
			seen[sub.ID] = struct{}{}
			submissions = append(submissions, sub)
		}

		if len(issues) < c.perPage {
			break
		}
	}

	c.logger.Info("Fetched submissions from tracker", map[string]interface{}{
		"count": len(submissions),
		"repo":  fmt.Sprintf("%s/%s", c.owner, c.repo),
	})
	return submissions, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]issue, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/issues", c.baseURL, c.owner, c.repo)

	params := url.Values{}
	params.Set("state", "open")
	params.Set("labels", strings.Join(c.labels, ","))
	params.Set("per_page", fmt.Sprintf("%d", c.perPage))
	params.Set("page", fmt.Sprintf("%d", page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.NewTrackerFetchFailedError(err.Error())
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTrackerFetchFailedError(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTrackerFetchFailedError(err.Error())
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, errors.NewTrackerAuthFailedError(string(body))
	case http.StatusForbidden, http.StatusTooManyRequests:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return nil, errors.NewTrackerRateLimitedError(
				fmt.Sprintf("rate limit resets at %s", resp.Header.Get("X-RateLimit-Reset")))
		}
		return nil, errors.NewTrackerAuthFailedError(string(body))
	default:
		return nil, errors.NewTrackerFetchFailedError(
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)))
	}

	var issues []issue
	if err := json.Unmarshal(body, &issues); err != nil {
		return nil, errors.NewTrackerFetchFailedError(
			fmt.Sprintf("failed to decode issues page %d: %s", page, err))
	}
	return issues, nil
}

// Package hn provides a client for the Hacker News Algolia search API.
package hn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"hnsearch/internal/domain"
)

// DefaultEndpoint is the public Hacker News Algolia search endpoint.
const DefaultEndpoint = "https://hn.algolia.com/api/v1/search"

const requestTimeout = 10 * time.Second

// algoliaResponse is the wire shape of the Algolia search response.
type algoliaResponse struct {
	Hits   []algoliaHit `json:"hits"`
	NbHits int          `json:"nbHits"`
}

// algoliaHit is a single result from the Algolia API.
type algoliaHit struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	Points      int    `json:"points"`
	NumComments int    `json:"num_comments"`
	CreatedAtI  int64  `json:"created_at_i"`
}

// Client performs story searches against the Algolia index.
type Client struct {
	endpoint    string
	hitsPerPage int
	httpClient  *http.Client
	limiter     *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a search client. An empty endpoint selects the public
// Algolia API; hitsPerPage <= 0 leaves the page size to the server.
func NewClient(endpoint string, hitsPerPage int, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint:    endpoint,
		hitsPerPage: hitsPerPage,
		httpClient:  &http.Client{Timeout: requestTimeout},
		// The endpoint is a shared public service; cap the request rate so
		// rapid re-submission cannot hammer it.
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 3),
		logger:  logger,
	}
}

// BuildRequestURL joins the endpoint and the query, escaping the query for
// the transport and nothing more.
func BuildRequestURL(endpoint, query string) string {
	params := url.Values{}
	params.Set("query", query)
	return endpoint + "?" + params.Encode()
}

// Search fetches stories matching query, in server relevance order.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Story, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := BuildRequestURL(c.endpoint, query)
	if c.hitsPerPage > 0 {
		reqURL = fmt.Sprintf("%s&hitsPerPage=%d", reqURL, c.hitsPerPage)
	}

	c.logger.Debug("searching", zap.String("query", query), zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var body algoliaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	stories := make([]domain.Story, 0, len(body.Hits))
	for _, hit := range body.Hits {
		if hit.Title == "" {
			// Comment hits carry no title; only stories are listed.
			continue
		}
		stories = append(stories, domain.Story{
			ID:           hit.ObjectID,
			Title:        hit.Title,
			URL:          hit.URL,
			Author:       hit.Author,
			CommentCount: hit.NumComments,
			Points:       hit.Points,
			CreatedAt:    time.Unix(hit.CreatedAtI, 0).UTC(),
		})
	}

	c.logger.Debug("search completed",
		zap.String("query", query),
		zap.Int("hits", len(stories)),
		zap.Int("total", body.NbHits))

	return stories, nil
}

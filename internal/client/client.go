// Package client implements the HTTP client for the welfare lottery draw
// notice API. It fetches one page of raw draw items per call and tolerates
// the several envelope shapes the endpoint has been seen to return.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lotto-works/ssqfetch/pkg/models"
)

// DefaultBaseURL is the draw notice search endpoint.
const DefaultBaseURL = "https://www.cwl.gov.cn/cwl_admin/front/cwlkj/search/kjxx/findDrawNotice"

// refererURL is the public results page. Requests without it tend to be
// answered with 403.
const refererURL = "https://www.cwl.gov.cn/ygkj/wqkjgg/ssq/"

// bodySnippetLen bounds how much of an error body is kept for diagnostics.
const bodySnippetLen = 200

// Filter restricts a fetch to an issue or date range. Zero values mean no
// restriction; the API expects the parameters present either way.
type Filter struct {
	IssueStart string
	IssueEnd   string
	DayStart   string
	DayEnd     string
}

// Client fetches pages of raw draw items from the API.
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
	game      string
	filter    Filter
	logger    zerolog.Logger
}

// New creates a draw API client. game is the dataset name the endpoint
// serves, "ssq" for the double color ball.
func New(httpClient *http.Client, baseURL, userAgent, game string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client:    httpClient,
		baseURL:   baseURL,
		userAgent: userAgent,
		game:      game,
		logger:    log.With().Str("component", "client").Logger(),
	}
}

// WithFilter returns a copy of the client restricted to the given range.
func (c *Client) WithFilter(f Filter) *Client {
	clone := *c
	clone.filter = f
	return &clone
}

// FetchPage performs one request against the draw API and returns the raw
// draw items for the given 1-based page. The API silently caps pageSize.
func (c *Client) FetchPage(ctx context.Context, pageSize, pageNo int) ([]models.RawDraw, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("page size must be >= 1, got %d", pageSize)
	}
	if pageNo < 1 {
		return nil, fmt.Errorf("page number must be >= 1, got %d", pageNo)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("name", c.game)
	q.Set("issueCount", strconv.Itoa(pageSize))
	q.Set("issueStart", c.filter.IssueStart)
	q.Set("issueEnd", c.filter.IssueEnd)
	q.Set("dayStart", c.filter.DayStart)
	q.Set("dayEnd", c.filter.DayEnd)
	q.Set("pageNo", strconv.Itoa(pageNo))
	req.URL.RawQuery = q.Encode()

	c.setHeaders(req)

	c.logger.Debug().
		Int("page", pageNo).
		Int("page_size", pageSize).
		Msg("Fetching draw page")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", pageNo, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read page %d response: %w", pageNo, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Snippet:    snippet(body),
		}
		c.logger.Error().
			Int("page", pageNo).
			Int("status", resp.StatusCode).
			Str("body", httpErr.Snippet).
			Msg("Draw page request failed")
		return nil, httpErr
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Error().
			Int("page", pageNo).
			Str("payload", string(body)).
			Msg("Draw page response is not a JSON object")
		return nil, &EnvelopeError{Payload: body, Err: err}
	}

	draws, ok := extractDraws(payload)
	if !ok {
		c.logger.Error().
			Int("page", pageNo).
			Str("payload", string(body)).
			Msg("No draw list found in response, API shape may have changed")
		return nil, &EnvelopeError{Payload: body}
	}

	c.logger.Debug().
		Int("page", pageNo).
		Int("draws", len(draws)).
		Msg("Draw page fetched")

	return draws, nil
}

// setHeaders mimics a browser request on the public results page. The UA
// carries a random numeric suffix so successive runs do not look identical.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", fmt.Sprintf("%s rand/%d", c.userAgent, 1000+rand.Intn(9000)))
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")
	req.Header.Set("Referer", refererURL)
	req.Header.Set("Origin", models.SiteOrigin)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
}

func snippet(body []byte) string {
	if len(body) > bodySnippetLen {
		body = body[:bodySnippetLen]
	}
	return string(body)
}

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/fundfaq"
)

// DefaultClientTimeout is the default timeout for API requests.
const DefaultClientTimeout = 10 * time.Second

// Ensure Client implements the fundfaq interfaces at compile time.
var (
	_ fundfaq.FAQService = (*Client)(nil)
	_ fundfaq.Searcher   = (*Client)(nil)
)

// Client talks to a remote fundfaq API. Records it returns carry no
// keywords because the API does not expose them.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultClientTimeout (10s) if not specified.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client. Its timeout takes
// precedence over WithTimeout.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultClientTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// FindFAQSummaries returns the id and question of every FAQ.
func (c *Client) FindFAQSummaries(ctx context.Context) ([]*fundfaq.FAQSummary, error) {
	var summaries []*fundfaq.FAQSummary
	status, err := c.get(ctx, "/faqs", &summaries)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, unexpectedStatus(status, "/faqs")
	}
	return summaries, nil
}

// FindFAQByID retrieves an FAQ by ID.
// Returns ENOTFOUND if no FAQ has that ID.
func (c *Client) FindFAQByID(ctx context.Context, id int) (*fundfaq.FAQ, error) {
	path := "/faq/" + strconv.Itoa(id)

	var resp faqResponse
	status, err := c.get(ctx, path, &resp)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK:
		if !resp.Found {
			return nil, fundfaq.Errorf(fundfaq.ENOTFOUND, "faq %d not found", id)
		}
		faq := resp.faq()
		faq.ID = id
		return faq, nil
	case http.StatusNotFound:
		return nil, fundfaq.Errorf(fundfaq.ENOTFOUND, "faq %d not found", id)
	case http.StatusBadRequest:
		return nil, fundfaq.Errorf(fundfaq.EINVALID, "invalid FAQ id %d", id)
	default:
		return nil, unexpectedStatus(status, path)
	}
}

// Search returns the best matching FAQ for query.
// Returns ENOQUERY if the query is blank and ENOTFOUND if nothing matches.
func (c *Client) Search(ctx context.Context, query string) (*fundfaq.FAQ, error) {
	path := "/search?q=" + url.QueryEscape(query)

	var resp faqResponse
	status, err := c.get(ctx, path, &resp)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK:
		if !resp.Found {
			return nil, fundfaq.Errorf(fundfaq.ENOTFOUND, "no FAQ matches %q", strings.TrimSpace(query))
		}
		return resp.faq(), nil
	case http.StatusBadRequest:
		return nil, fundfaq.Errorf(fundfaq.ENOQUERY, msgNoQuery)
	default:
		return nil, unexpectedStatus(status, "/search")
	}
}

// get issues a GET request and decodes a JSON body into v for the statuses
// the API documents. Other statuses are returned without decoding.
func (c *Client) get(ctx context.Context, path string, v any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNotFound, http.StatusBadRequest:
	default:
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return resp.StatusCode, nil
}

func unexpectedStatus(status int, path string) error {
	return fmt.Errorf("HTTP %d for %s", status, path)
}

func (r faqResponse) faq() *fundfaq.FAQ {
	return &fundfaq.FAQ{
		Question:   r.Question,
		Answer:     r.Answer,
		Source:     r.Source,
		SourceName: r.SourceName,
	}
}

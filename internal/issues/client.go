package issues

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorewood/issueposts/internal/output"
)

// HTTPDoer defines the HTTP operations required by Client.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Query selects which issues to fetch.
type Query struct {
	APIURL     string // e.g. https://api.github.com
	Repository string // owner/name
	Label      string
	State      string // open, closed or all; empty leaves it to the server
}

// Client fetches issues with a single GET request.
type Client struct {
	query      Query
	userAgent  string
	httpClient HTTPDoer
}

// NewClient creates a client for the given query.
// version is sent in the User-Agent header.
func NewClient(query Query, version string) *Client {
	return &Client{
		query:     query,
		userAgent: "issueposts/" + version,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// WithHTTPDoer replaces the HTTP client. Returns the client for chaining.
func (c *Client) WithHTTPDoer(doer HTTPDoer) *Client {
	c.httpClient = doer
	return c
}

// URL returns the endpoint the client requests.
func (c *Client) URL() string {
	params := url.Values{}
	params.Set("labels", c.query.Label)
	if c.query.State != "" {
		params.Set("state", c.query.State)
	}
	base := strings.TrimRight(c.query.APIURL, "/")
	return fmt.Sprintf("%s/repos/%s/issues?%s", base, c.query.Repository, params.Encode())
}

// Fetch performs the request and decodes the response as a JSON array of
// issue objects, in the order the server returned them.
func (c *Client) Fetch(ctx context.Context) ([]Issue, error) {
	body, err := c.get(ctx, c.URL())
	if err != nil {
		return nil, err
	}
	return Decode(body)
}

// Decode parses a JSON array of issue objects.
func Decode(body []byte) ([]Issue, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var list []Issue
	if err := dec.Decode(&list); err != nil {
		return nil, output.NewParseError("decoding issue list", err)
	}
	if list == nil {
		return nil, output.NewParseError("decoding issue list", errors.New("expected a JSON array"))
	}
	if dec.More() {
		return nil, output.NewParseError("decoding issue list", errors.New("unexpected data after JSON array"))
	}
	for idx, issue := range list {
		if issue == nil {
			return nil, output.NewParseError("decoding issue list", fmt.Errorf("element %d is null", idx))
		}
	}
	return list, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, output.NewNetworkError("failed to create request", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, output.NewNetworkError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, output.NewNetworkError("failed to read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Truncate error body to keep messages readable
		errBody := string(respBody)
		if len(errBody) > 500 {
			errBody = errBody[:500]
		}
		return nil, output.NewNetworkError(fmt.Sprintf("API error (status %d): %s", resp.StatusCode, errBody), nil)
	}

	return respBody, nil
}

package diigo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JesseEmond/diigo-export-to-csv/internal/entities"
)

const defaultTimeout = 30 * time.Second

// Client interfaces with the Diigo API v2. Paging is strictly
// sequential: the empty-page termination condition only works when
// pages are requested in offset order.
type Client struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
	log        logrus.FieldLogger
}

// NewClient creates a Diigo API client. The base URL and page size are
// injected so the client stays testable; page size must already be
// validated against the documented API ceiling.
func NewClient(baseURL string, pageSize int, log logrus.FieldLogger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		pageSize:   pageSize,
		log:        log,
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// FetchAll retrieves every bookmark of the authenticated user, one page
// at a time, until the API returns an empty page. Pages are
// concatenated in request order. Any failed page fails the whole fetch.
func (c *Client) FetchAll(ctx context.Context, creds entities.Credentials) ([]entities.Bookmark, error) {
	var bookmarks []entities.Bookmark

	for start := 0; ; start += c.pageSize {
		c.log.WithFields(logrus.Fields{
			"start": start,
			"count": c.pageSize,
		}).Info("Fetching bookmarks page")

		page, err := c.getBookmarks(ctx, creds, start)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		bookmarks = append(bookmarks, page...)
	}

	return bookmarks, nil
}

func (c *Client) getBookmarks(ctx context.Context, creds entities.Credentials, start int) ([]entities.Bookmark, error) {
	params := url.Values{}
	params.Set("user", creds.Username)
	params.Set("start", strconv.Itoa(start))
	params.Set("count", strconv.Itoa(c.pageSize))
	params.Set("filter", "all")

	body, err := c.get(ctx, "bookmarks", params, creds)
	if err != nil {
		return nil, err
	}

	var wire []wireBookmark
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode bookmarks response: %w", err)
	}

	bookmarks := make([]entities.Bookmark, 0, len(wire))
	for _, w := range wire {
		bookmark, err := w.decodeBookmark()
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, bookmark)
	}

	return bookmarks, nil
}

// get issues an authenticated GET against an API method path. The API
// key travels as the "key" query parameter, the user credentials as
// HTTP Basic auth.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, creds entities.Credentials) ([]byte, error) {
	if params.Has("key") {
		return nil, fmt.Errorf("query parameter \"key\" is reserved for the API key")
	}
	params.Set("key", creds.APIKey)

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(creds.Username, creds.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

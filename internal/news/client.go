package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/shared"
)

const defaultPageSize = 20

// FeedClient fetches one page of articles from the upstream provider. An
// empty category requests the unfiltered feed.
type FeedClient interface {
	FetchPage(ctx context.Context, category string) ([]Article, error)
}

// Client talks to a NewsAPI-compatible top-headlines endpoint.
type Client struct {
	baseURL  string
	apiKey   string
	region   string
	pageSize int
	http     *http.Client
}

// NewClient constructs a feed client with a bounded request timeout. A
// single attempt is made per call; retries are the caller's concern.
func NewClient(baseURL, apiKey, region string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		region:   region,
		pageSize: defaultPageSize,
		http:     &http.Client{Timeout: timeout},
	}
}

type providerSource struct {
	Name string `json:"name"`
}

type providerArticle struct {
	Source      providerSource `json:"source"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	PublishedAt string         `json:"publishedAt"`
	URL         string         `json:"url"`
	URLToImage  string         `json:"urlToImage"`
}

type providerResponse struct {
	Status   string            `json:"status"`
	Articles []providerArticle `json:"articles"`
}

// FetchPage issues one outbound call and normalizes the payload into
// Articles with sequence-local ids in provider order.
func (c *Client) FetchPage(ctx context.Context, category string) ([]Article, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("country", c.region)
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	if category != "" {
		params.Set("category", category)
	}

	endpoint := c.baseURL + "/top-headlines?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", shared.ErrUpstream, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", shared.ErrUpstream, resp.StatusCode)
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", shared.ErrUpstream, err)
	}

	resolved := category
	if resolved == "" {
		resolved = DefaultCategory
	}

	articles := make([]Article, 0, len(payload.Articles))
	for i, item := range payload.Articles {
		content := item.Description
		if content == "" {
			content = item.Content
		}
		articles = append(articles, Article{
			ID:          i + 1,
			Title:       item.Title,
			Content:     content,
			Category:    resolved,
			PublishedAt: item.PublishedAt,
			Source:      item.Source.Name,
			URL:         item.URL,
			URLToImage:  item.URLToImage,
		})
	}
	return articles, nil
}

var _ FeedClient = (*Client)(nil)

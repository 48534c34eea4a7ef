package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const wikipediaAPIURL = "https://en.wikipedia.org/w/api.php"

// ImageCandidate is a page title paired with the best image URL Wikipedia
// reports for it. Original resolution wins over the thumbnail.
type ImageCandidate struct {
	Title    string
	ImageURL string
}

type WikipediaClientInterface interface {
	LookupByTitle(ctx context.Context, title string) ([]ImageCandidate, error)
	SearchImages(ctx context.Context, query string, limit int) ([]ImageCandidate, error)
}

type WikipediaClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewWikipediaClient() *WikipediaClient {
	return &WikipediaClient{
		BaseURL: wikipediaAPIURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// LookupByTitle resolves a page by exact title (following redirects) and
// returns its lead image, if any.
func (c *WikipediaClient) LookupByTitle(ctx context.Context, title string) ([]ImageCandidate, error) {
	if title == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("redirects", "1")
	params.Set("prop", "pageimages")
	params.Set("piprop", "original|thumbnail")
	params.Set("pithumbsize", "1200")
	params.Set("format", "json")

	return c.queryPages(ctx, params)
}

// SearchImages runs a generator=search query and returns the lead images of
// the matching pages in search order.
func (c *WikipediaClient) SearchImages(ctx context.Context, query string, limit int) ([]ImageCandidate, error) {
	if query == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("generator", "search")
	params.Set("gsrsearch", query)
	params.Set("gsrlimit", fmt.Sprintf("%d", limit))
	params.Set("prop", "pageimages")
	params.Set("piprop", "original|thumbnail")
	// Without pilimit the API returns image data for a single page even
	// when the generator matched several.
	params.Set("pilimit", fmt.Sprintf("%d", limit))
	params.Set("pithumbsize", "1200")
	params.Set("format", "json")

	return c.queryPages(ctx, params)
}

func (c *WikipediaClient) queryPages(ctx context.Context, params url.Values) ([]ImageCandidate, error) {
	endpoint, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid wikipedia base url: %w", err)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", imageFetchUserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia returned status %d", resp.StatusCode)
	}

	var decoded struct {
		Query struct {
			Pages map[string]struct {
				Title    string `json:"title"`
				Index    int    `json:"index"`
				Original *struct {
					Source string `json:"source"`
				} `json:"original"`
				Thumbnail *struct {
					Source string `json:"source"`
				} `json:"thumbnail"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	type indexed struct {
		candidate ImageCandidate
		index     int
	}
	ordered := make([]indexed, 0, len(decoded.Query.Pages))
	for _, page := range decoded.Query.Pages {
		candidate := ImageCandidate{Title: page.Title}
		if page.Original != nil && page.Original.Source != "" {
			candidate.ImageURL = page.Original.Source
		} else if page.Thumbnail != nil && page.Thumbnail.Source != "" {
			candidate.ImageURL = page.Thumbnail.Source
		}
		if candidate.ImageURL == "" {
			continue
		}
		ordered = append(ordered, indexed{candidate: candidate, index: page.Index})
	}

	// Generator results come back as a map; the index field restores the
	// search ranking.
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if ordered[j].index < ordered[i].index {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
		}
	}

	candidates := make([]ImageCandidate, 0, len(ordered))
	for _, entry := range ordered {
		candidates = append(candidates, entry.candidate)
	}
	return candidates, nil
}

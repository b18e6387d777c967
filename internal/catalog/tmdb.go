package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://api.themoviedb.org/3"
	posterBaseURL    = "https://image.tmdb.org/t/p/w500"
	placeholderImage = "https://upload.wikimedia.org/wikipedia/commons/thumb/6/65/No-Image-Placeholder.svg/495px-No-Image-Placeholder.svg.png?20200912122019"
)

// MovieSummary is one search hit, already translated into the shape
// the frontend expects.
type MovieSummary struct {
	Title       string `json:"title"`
	ReleaseYear string `json:"releaseYear"`
	Poster      string `json:"poster"`
	ID          int    `json:"id"`
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, defaultBaseURL)
}

// NewWithBaseURL exists so tests can point the client at a local server.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResult struct {
	Results []struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		ReleaseDate string `json:"release_date"`
		PosterPath  string `json:"poster_path"`
	} `json:"results"`
}

// Search queries /search/movie and maps each result. The release year
// is the leading component of the release date, or "Unknown" when the
// catalog has none; a missing poster path falls back to the
// placeholder image.
func (c *Client) Search(ctx context.Context, query string) ([]MovieSummary, error) {
	u, err := url.Parse(c.baseURL + "/search/movie")
	if err != nil {
		return nil, fmt.Errorf("parse search URL: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	q.Set("query", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB returned %d", resp.StatusCode)
	}

	var res searchResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	movies := make([]MovieSummary, 0, len(res.Results))
	for _, r := range res.Results {
		year := "Unknown"
		if r.ReleaseDate != "" {
			year = strings.SplitN(r.ReleaseDate, "-", 2)[0]
		}

		poster := placeholderImage
		if r.PosterPath != "" {
			poster = posterBaseURL + r.PosterPath
		}

		movies = append(movies, MovieSummary{
			Title:       r.Title,
			ReleaseYear: year,
			Poster:      poster,
			ID:          r.ID,
		})
	}

	return movies, nil
}

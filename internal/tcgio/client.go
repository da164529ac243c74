package tcgio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultAPIBase = "https://api.pokemontcg.io/v2"
	pageSize       = 250
)

// Client is a pokemontcg.io API client. An API key is optional; it only
// raises rate limits.
type Client struct {
	apiBase string
	apiKey  string
	http    *http.Client
}

// New creates a Client. If apiBase is empty, the public API is used.
func New(apiBase, apiKey string) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	apiBase = strings.TrimRight(apiBase, "/")
	return &Client{
		apiBase: apiBase,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
}

// APISet is the upstream set shape, trimmed to selected fields.
type APISet struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Series      string `json:"series"`
	ReleaseDate string `json:"releaseDate"`
	Total       int    `json:"total"`
	Images      struct {
		Symbol string `json:"symbol"`
		Logo   string `json:"logo"`
	} `json:"images"`
}

// APICard is the upstream card shape, trimmed to selected fields.
type APICard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Number    string `json:"number"`
	Rarity    string `json:"rarity"`
	Supertype string `json:"supertype"`
	Set       struct {
		ID string `json:"id"`
	} `json:"set"`
	Images struct {
		Small string `json:"small"`
		Large string `json:"large"`
	} `json:"images"`
}

// ListSets fetches all sets in one call.
func (c *Client) ListSets(ctx context.Context) ([]APISet, error) {
	var out struct {
		Data []APISet `json:"data"`
	}
	url := fmt.Sprintf("%s/sets?select=id,name,series,releaseDate,images,total", c.apiBase)
	if err := c.getJSON(ctx, url, &out); err != nil {
		return nil, fmt.Errorf("fetching sets: %w", err)
	}
	return out.Data, nil
}

// CardPage is one page of the paged card listing.
type CardPage struct {
	Data       []APICard `json:"data"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalCount int       `json:"totalCount"`
}

// ListCardsPage fetches one page of cards. Pages are 1-based.
func (c *Client) ListCardsPage(ctx context.Context, page int) (*CardPage, error) {
	var out CardPage
	url := fmt.Sprintf("%s/cards?page=%d&pageSize=%d&select=id,name,supertype,set,number,rarity,images",
		c.apiBase, page, pageSize)
	if err := c.getJSON(ctx, url, &out); err != nil {
		return nil, fmt.Errorf("fetching cards page %d: %w", page, err)
	}
	return &out, nil
}

// PageSize returns the fixed page size used by ListCardsPage.
func (c *Client) PageSize() int { return pageSize }

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("tcg API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

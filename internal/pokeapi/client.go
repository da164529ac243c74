package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultAPIBase = "https://pokeapi.co/api/v2"

// Client is a PokeAPI client.
type Client struct {
	apiBase string
	http    *http.Client
}

// New creates a Client. If apiBase is empty, the public PokeAPI is used.
func New(apiBase string) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	apiBase = strings.TrimRight(apiBase, "/")
	return &Client{
		apiBase: apiBase,
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
}

// IndexEntry is one entry from the species index endpoint. The numeric id
// is parsed from the trailing path segment of the URL.
type IndexEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID extracts the numeric species id from the entry URL, or 0.
func (e IndexEntry) ID() int {
	parts := strings.Split(strings.TrimRight(e.URL, "/"), "/")
	if len(parts) == 0 {
		return 0
	}
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return n
}

// Detail is the per-species detail response, trimmed to the fields used.
type Detail struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

// Sprite returns the best available sprite URL, preferring the official
// artwork, or "" if the species has none.
func (d *Detail) Sprite() string {
	if s := d.Sprites.Other.OfficialArtwork.FrontDefault; s != "" {
		return s
	}
	return d.Sprites.FrontDefault
}

// TypeNames flattens the nested type tags in pokedex order.
func (d *Detail) TypeNames() []string {
	names := make([]string, 0, len(d.Types))
	for _, t := range d.Types {
		names = append(names, t.Type.Name)
	}
	return names
}

// ListSpecies fetches the full species index in one call.
func (c *Client) ListSpecies(ctx context.Context) ([]IndexEntry, error) {
	var out struct {
		Results []IndexEntry `json:"results"`
	}
	url := fmt.Sprintf("%s/pokemon?limit=100000&offset=0", c.apiBase)
	if err := c.getJSON(ctx, url, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}
	return out.Results, nil
}

// GetDetail fetches one species detail by numeric id.
func (c *Client) GetDetail(ctx context.Context, id int) (*Detail, error) {
	var d Detail
	url := fmt.Sprintf("%s/pokemon/%d", c.apiBase, id)
	if err := c.getJSON(ctx, url, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("pokeapi error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

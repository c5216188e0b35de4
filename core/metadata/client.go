package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"corpus-builder/core/backend"
)

// Client is the metadata REST backend.
type Client interface {
	// Map fetches the detail record of a map.
	Map(ctx context.Context, id int) (*Map, error)
	// Monster fetches the detail record of a monster.
	Monster(ctx context.Context, id int) (*Monster, error)
	// Item fetches the detail record of an item.
	Item(ctx context.Context, id int) (*Item, error)
	// Search runs a free-text query against one collection.
	Search(ctx context.Context, kind Kind, query string, limit int) ([]Summary, error)
	// IconURL builds the conventional icon URL of an item.
	IconURL(itemID int) string
}

type httpClient struct {
	root string
	http *http.Client
}

// NewClient creates a metadata client for the configured region and version.
func NewClient(cfg Config) Client {
	root := fmt.Sprintf("%s/%s/%s", strings.TrimRight(cfg.BaseURL, "/"), cfg.Region, cfg.Version)
	return &httpClient{root: root, http: backend.NewHTTPClient(cfg.TimeoutSeconds)}
}

func (c *httpClient) Map(ctx context.Context, id int) (*Map, error) {
	var m Map
	if err := c.getJSON(ctx, fmt.Sprintf("%s/map/%d", c.root, id), &m); err != nil {
		return nil, fmt.Errorf("map %d: %w", id, err)
	}
	return &m, nil
}

func (c *httpClient) Monster(ctx context.Context, id int) (*Monster, error) {
	var m Monster
	if err := c.getJSON(ctx, fmt.Sprintf("%s/mob/%d", c.root, id), &m); err != nil {
		return nil, fmt.Errorf("monster %d: %w", id, err)
	}
	return &m, nil
}

func (c *httpClient) Item(ctx context.Context, id int) (*Item, error) {
	var it Item
	if err := c.getJSON(ctx, fmt.Sprintf("%s/item/%d", c.root, id), &it); err != nil {
		return nil, fmt.Errorf("item %d: %w", id, err)
	}
	return &it, nil
}

func (c *httpClient) Search(ctx context.Context, kind Kind, query string, limit int) ([]Summary, error) {
	params := url.Values{}
	if query != "" {
		params.Set("searchFor", query)
	}
	if limit > 0 {
		params.Set("count", strconv.Itoa(limit))
	}

	endpoint := fmt.Sprintf("%s/%s", c.root, kind)
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var hits []Summary
	if err := c.getJSON(ctx, endpoint, &hits); err != nil {
		return nil, fmt.Errorf("search %s %q: %w", kind, query, err)
	}
	return hits, nil
}

func (c *httpClient) IconURL(itemID int) string {
	return fmt.Sprintf("%s/item/%d/icon", c.root, itemID)
}

func (c *httpClient) getJSON(ctx context.Context, endpoint string, out any) error {
	body, err := backend.Get(ctx, c.http, endpoint)
	if err != nil {
		return err
	}
	// JSON null at the top level means the backend has no record
	if strings.TrimSpace(string(body)) == "null" {
		return backend.ErrNotFound
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", backend.ErrUnavailable, endpoint, err)
	}
	return nil
}

package tree

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"corpus-builder/core/backend"

	"github.com/tidwall/gjson"
	"gopkg.in/guregu/null.v3"
)

// Client is the tree attribute backend.
type Client interface {
	// Node fetches the node at a slash separated path.
	Node(ctx context.Context, path string) (*Node, error)
}

type httpClient struct {
	root string
	http *http.Client
}

// NewClient creates a tree client.
func NewClient(cfg Config) Client {
	return &httpClient{
		root: strings.TrimRight(cfg.BaseURL, "/"),
		http: backend.NewHTTPClient(cfg.TimeoutSeconds),
	}
}

func (c *httpClient) Node(ctx context.Context, path string) (*Node, error) {
	endpoint := c.root + "/" + strings.TrimLeft(path, "/")
	body, err := backend.Get(ctx, c.http, endpoint)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", path, err)
	}
	node, err := ParseNode(body)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", path, err)
	}
	return node, nil
}

// ParseNode decodes a node payload of the form {"children": [...], "value": ...}.
// Only scalar values are kept; objects and arrays leave Value invalid.
func ParseNode(body []byte) (*Node, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed node payload", backend.ErrUnavailable)
	}
	doc := gjson.ParseBytes(body)
	if doc.Type == gjson.Null {
		return nil, backend.ErrNotFound
	}

	node := &Node{}
	doc.Get("children").ForEach(func(_, child gjson.Result) bool {
		if child.Type == gjson.String {
			node.Children = append(node.Children, child.String())
		}
		return true
	})

	switch v := doc.Get("value"); v.Type {
	case gjson.Number:
		node.Value = null.StringFrom(v.Raw)
	case gjson.String:
		node.Value = null.StringFrom(v.String())
	case gjson.True, gjson.False:
		node.Value = null.StringFrom(v.Raw)
	}

	return node, nil
}

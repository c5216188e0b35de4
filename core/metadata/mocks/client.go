package mocks

import (
	"context"
	"fmt"

	"corpus-builder/core/metadata"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of metadata.Client
type Client struct {
	mock.Mock
}

func (m *Client) Map(ctx context.Context, id int) (*metadata.Map, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*metadata.Map); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Monster(ctx context.Context, id int) (*metadata.Monster, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*metadata.Monster); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Item(ctx context.Context, id int) (*metadata.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*metadata.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Search(ctx context.Context, kind metadata.Kind, query string, limit int) ([]metadata.Summary, error) {
	args := m.Called(ctx, kind, query, limit)
	if v, ok := args.Get(0).([]metadata.Summary); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// IconURL is deterministic and not recorded as a call.
func (m *Client) IconURL(itemID int) string {
	return fmt.Sprintf("icon://%d", itemID)
}

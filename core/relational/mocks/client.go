package mocks

import (
	"context"

	"corpus-builder/core/relational"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of relational.Client
type Client struct {
	mock.Mock
}

func (m *Client) Item(ctx context.Context, id int) (*relational.ItemRow, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*relational.ItemRow); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GearStats(ctx context.Context, id int) (map[string]int, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(map[string]int); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Drops(ctx context.Context, dropperID int) ([]relational.DropRow, error) {
	args := m.Called(ctx, dropperID)
	if v, ok := args.Get(0).([]relational.DropRow); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListItemIDs(ctx context.Context, filter relational.IDFilter) ([]int, error) {
	args := m.Called(ctx, filter)
	if v, ok := args.Get(0).([]int); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

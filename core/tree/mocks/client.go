package mocks

import (
	"context"

	"corpus-builder/core/tree"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of tree.Client
type Client struct {
	mock.Mock
}

func (m *Client) Node(ctx context.Context, path string) (*tree.Node, error) {
	args := m.Called(ctx, path)
	if v, ok := args.Get(0).(*tree.Node); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

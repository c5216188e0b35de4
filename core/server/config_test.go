package server_test

import (
	"testing"

	"corpus-builder/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Bare", "8080", ":8080"},
		{"Prefixed", ":9090", ":9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Addr())
		})
	}
}

func TestConfig_Protected(t *testing.T) {
	assert.False(t, server.Config{}.Protected())
	assert.True(t, server.Config{ApiKey: "secret"}.Protected())
}

package database

import (
	"context"
	"testing"

	"marcingest/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestRedactDSN(t *testing.T) {
	tests := map[string]string{
		"postgres://user:pw@localhost:5432/marc": "postgres://***@localhost:5432/marc",
		"postgres://localhost/marc":              "postgres://localhost/marc",
		"host=localhost user=postgres":           "host=localhost user=postgres",
	}
	for in, want := range tests {
		assert.Equal(t, want, RedactDSN(in))
	}
}

func TestOpen_InvalidURL(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{URL: "postgres://user:pw@localhost:notaport/marc"})
	assert.Error(t, err)
}

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name:     "postgres",
			config:   DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "pizza", Password: "pw", Name: "orders", SSLMode: "disable"},
			expected: "host=db user=pizza password=pw dbname=orders port=5432 sslmode=disable",
		},
		{
			name:     "sqlite path gets foreign keys",
			config:   DatabaseConfig{Driver: "sqlite", Path: "test.sqlite"},
			expected: "test.sqlite?_foreign_keys=on",
		},
		{
			name:     "sqlite path with existing query",
			config:   DatabaseConfig{Driver: "", Path: "file::memory:?cache=shared"},
			expected: "file::memory:?cache=shared&_foreign_keys=on",
		},
		{
			name:     "unsupported driver",
			config:   DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "very-secret"}
	assert.NotContains(t, cfg.String(), "very-secret")
	assert.Contains(t, cfg.String(), "[REDACTED]")
}

package main

import (
	"testing"

	"github.com/phrazzld/oblivion-api/internal/config"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupAppDatabaseRejectsBadURL(t *testing.T) {
	t.Parallel()

	lg, _ := logger.NewTestLogger(t)
	cfg := &config.Config{Database: config.DatabaseConfig{URL: "postgres://oblivion@localhost:notaport/oblivion"}}

	db, err := setupAppDatabase(cfg, lg)

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to parse database URL")
}

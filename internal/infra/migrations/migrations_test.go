package migrations

import (
	"io/fs"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "sql/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	goose.SetBaseFS(embedMigrations)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	collected, err := goose.CollectMigrations(dir, 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, collected, len(files))
	assert.Equal(t, int64(1), collected[0].Version)
}

func TestInitMigrationHasUpAndDown(t *testing.T) {
	content, err := fs.ReadFile(embedMigrations, "sql/00001_init.sql")
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "-- +goose Up")
	assert.Contains(t, text, "-- +goose Down")
	for _, table := range []string{"vendors", "services", "workers", "worker_services", "worker_availability", "worker_schedule_overrides", "appointments"} {
		assert.Contains(t, text, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

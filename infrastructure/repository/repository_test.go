package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/database/sqlite"
	"github.com/vfg2006/revenue-forecast-api/infrastructure/migration"
)

func newTestDB(t *testing.T) *sqlite.Connection {
	t.Helper()

	ctx := context.Background()
	conn, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migration.Apply(ctx, conn))
	return conn
}

var testPlaceholder = squirrel.Question

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
}

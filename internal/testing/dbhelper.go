package testing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ecomload/internal/db"
	"github.com/vvka-141/ecomload/internal/files/csvreader"
	"github.com/vvka-141/ecomload/internal/files/filesystem"
	"github.com/vvka-141/ecomload/internal/files/scanner"
	"github.com/vvka-141/ecomload/internal/logging"
	"github.com/vvka-141/ecomload/internal/services"
)

// SkipIfShort skips the test if running in short mode (-short flag).
func SkipIfShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// NewTestLoader creates a LoadService wired to real SQLite files and the OS
// filesystem, with logging discarded.
func NewTestLoader(t *testing.T) *services.LoadService {
	t.Helper()

	logger := logging.NewNullLogger()
	return services.NewLoadService(
		db.NewSQLiteConnector(logger, false, 0),
		scanner.NewScanner(),
		csvreader.NewReader(),
		logger,
	)
}

// NewTestLoaderWithFS creates a LoadService that reads sources from fsProvider
// while still writing to a real SQLite file.
func NewTestLoaderWithFS(t *testing.T, fsProvider filesystem.FileSystemProvider) *services.LoadService {
	t.Helper()

	logger := logging.NewNullLogger()
	return services.NewLoadService(
		db.NewSQLiteConnector(logger, false, 0),
		scanner.NewScannerWithFS(fsProvider),
		csvreader.NewReaderWithFS(fsProvider),
		logger,
	)
}

// OpenTestDatabase opens the SQLite file at path for assertions and closes it
// when the test ends.
func OpenTestDatabase(t *testing.T, path string) *db.Session {
	t.Helper()

	session, err := db.NewSQLiteConnector(logging.NewNullLogger(), false, 0).Connect(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

// CountRows returns the row count of every table in tables.
func CountRows(t *testing.T, session *db.Session, tables ...string) map[string]int64 {
	t.Helper()

	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		n, err := session.Count(context.Background(), table)
		require.NoError(t, err)
		counts[table] = n
	}
	return counts
}

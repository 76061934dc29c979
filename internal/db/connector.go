package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// Connection configuration constants
const (
	// DefaultMaxOpenConns keeps the whole run on a single SQLite connection.
	DefaultMaxOpenConns = 1

	// DefaultBusyTimeout is how long SQLite waits on a lock held by another process.
	DefaultBusyTimeout = 5 * time.Second

	// SlowStatementThreshold marks statements gorm reports as slow in verbose mode.
	SlowStatementThreshold = 2 * time.Second

	// MaxBoundVariables is SQLite's default SQLITE_MAX_VARIABLE_NUMBER.
	MaxBoundVariables = 32766
)

// printfWriter feeds gorm's statement log into an ecomload.Logger.
type printfWriter struct {
	logger ecomload.Logger
}

func (w printfWriter) Printf(format string, args ...interface{}) {
	w.logger.Verbose(format, args...)
}

func newGormLogger(logger ecomload.Logger, verbose bool) gormlogger.Interface {
	if !verbose || logger == nil {
		return gormlogger.Default.LogMode(gormlogger.Silent)
	}
	return gormlogger.New(printfWriter{logger: logger}, gormlogger.Config{
		SlowThreshold:             SlowStatementThreshold,
		LogLevel:                  gormlogger.Info,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// SQLiteConnector opens file-backed SQLite sessions.
type SQLiteConnector struct {
	logger    ecomload.Logger
	verbose   bool
	batchSize int
}

// NewSQLiteConnector creates a connector. A batchSize of zero means ecomload.DefaultBatchSize.
func NewSQLiteConnector(logger ecomload.Logger, verbose bool, batchSize int) *SQLiteConnector {
	if batchSize <= 0 {
		batchSize = ecomload.DefaultBatchSize
	}
	return &SQLiteConnector{logger: logger, verbose: verbose, batchSize: batchSize}
}

// Connect opens (creating if needed) the database file at path and verifies the
// connection. The returned Session holds exactly one connection until Close.
func (c *SQLiteConnector) Connect(ctx context.Context, path string) (*Session, error) {
	gdb, err := gorm.Open(sqlite.Open(buildDSN(path)), &gorm.Config{
		Logger: newGormLogger(c.logger, c.verbose),
	})
	if err != nil {
		return nil, wrapConnectionError(err, path)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(DefaultMaxOpenConns)
	sqlDB.SetMaxIdleConns(DefaultMaxOpenConns)

	// Test the connection; this is also what creates the file
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, wrapConnectionError(err, path)
	}

	return &Session{db: gdb, batchSize: c.batchSize}, nil
}

// Open is Connect for callers that depend on the ecomload.Connector interface.
func (c *SQLiteConnector) Open(ctx context.Context, path string) (ecomload.Session, error) {
	session, err := c.Connect(ctx, path)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// buildDSN appends the pragmas every session needs to a file path.
func buildDSN(path string) string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d", filepath.ToSlash(path), DefaultBusyTimeout.Milliseconds())
}

// wrapConnectionError wraps raw driver errors with actionable guidance.
func wrapConnectionError(err error, path string) error {
	errStr := strings.ToLower(err.Error())
	dir := filepath.Dir(path)

	switch {
	case strings.Contains(errStr, "unable to open database file"):
		if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
			return fmt.Errorf(`cannot create database file %s

The parent directory %s does not exist. Create it first or choose
another --db-path.

Original error: %w`, path, dir, err)
		}
		return fmt.Errorf(`cannot open database file %s

Possible causes:
  - No write permission on %s
  - The path points at a directory

Original error: %w`, path, dir, err)

	case strings.Contains(errStr, "file is not a database") || strings.Contains(errStr, "file is encrypted"):
		return fmt.Errorf(`%s exists but is not a SQLite database

Choose another --db-path or move the file away.

Original error: %w`, path, err)

	case strings.Contains(errStr, "database is locked"):
		return fmt.Errorf(`database %s is locked by another process

Original error: %w`, path, err)

	default:
		return fmt.Errorf("failed to open database %s: %w", path, err)
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/ecomload/internal/files/scanner"
	"github.com/vvka-141/ecomload/internal/schema"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// LoadService runs the CSV to SQLite load.
// Thread-Safety: NOT safe for concurrent Run() calls against the same database.
type LoadService struct {
	connector ecomload.Connector
	scanner   ecomload.SourceScanner
	reader    ecomload.FrameReader
	logger    ecomload.Logger
	now       func() time.Time
}

// NewLoadService creates a LoadService with all dependencies injected.
// Panics on nil dependencies; runtime conditions are returned as errors from Run.
func NewLoadService(
	connector ecomload.Connector,
	sourceScanner ecomload.SourceScanner,
	reader ecomload.FrameReader,
	logger ecomload.Logger,
) *LoadService {
	if connector == nil {
		panic("connector cannot be nil")
	}
	if sourceScanner == nil {
		panic("scanner cannot be nil")
	}
	if reader == nil {
		panic("reader cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &LoadService{
		connector: connector,
		scanner:   sourceScanner,
		reader:    reader,
		logger:    logger,
		now:       time.Now,
	}
}

// Run loads every configured source into its table.
//
// The data directory is checked before the database is opened, so a missing
// directory leaves no database file behind. Tables are created first, then
// sources are appended one at a time in configuration order. The first
// failure aborts the run; tables appended before it keep their rows.
func (s *LoadService) Run(ctx context.Context, cfg ecomload.Config) (summary ecomload.Summary, err error) {
	started := s.now()
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return summary, err
	}
	if err := checkTables(cfg.Sources); err != nil {
		return summary, err
	}

	summary.RunID = uuid.New()
	summary.DBPath = cfg.DBPath
	s.logger.Verbose("Run %s: loading %s into %s", summary.RunID, cfg.DataDir, cfg.DBPath)

	if err := s.VerifySourceDirectory(cfg.DataDir, cfg.Sources); err != nil {
		return summary, err
	}

	session, err := s.connector.Open(ctx, cfg.DBPath)
	if err != nil {
		return summary, err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			if err == nil {
				err = fmt.Errorf("failed to close database: %w", closeErr)
			} else {
				s.logger.Error("failed to close database: %v", closeErr)
			}
		}
	}()

	if err := s.EnsureSchema(ctx, session); err != nil {
		return summary, err
	}

	for _, src := range cfg.Sources {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("load cancelled before %s: %w", src.Table, err)
		}
		csvPath := scanner.SourcePath(cfg.DataDir, src)
		rows, err := s.LoadTable(ctx, session, csvPath, src.Table)
		if err != nil {
			return summary, err
		}
		summary.Tables = append(summary.Tables, ecomload.TableResult{Source: src, Rows: rows})
		s.logger.Info("Loaded %d rows from %s into %s", rows, src.File, src.Table)
	}

	summary.Duration = s.now().Sub(started)
	return summary, nil
}

// VerifySourceDirectory fails with ecomload.ErrMissingDirectory when dir is
// absent. CSV files in dir that no source refers to are reported in verbose mode.
func (s *LoadService) VerifySourceDirectory(dir string, sources []ecomload.Source) error {
	if err := s.scanner.VerifyDirectory(dir); err != nil {
		return err
	}
	extra, err := s.scanner.Unreferenced(dir, sources)
	if err != nil {
		s.logger.Verbose("Could not list %s: %v", dir, err)
		return nil
	}
	for _, name := range extra {
		s.logger.Verbose("Ignoring %s: no table is mapped to it", name)
	}
	return nil
}

// EnsureSchema creates every registry table that does not exist yet.
func (s *LoadService) EnsureSchema(ctx context.Context, session ecomload.Session) error {
	for _, table := range schema.Tables() {
		if err := session.Exec(ctx, table.CreateStatement()); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.Name, err)
		}
	}
	s.logger.Verbose("Schema ready (%d tables)", len(schema.Tables()))
	return nil
}

// LoadTable appends the rows of the CSV at csvPath to table and returns how
// many rows were written. A missing file yields ecomload.ErrMissingFile; read
// and write failures yield ecomload.ErrLoadFailed.
func (s *LoadService) LoadTable(ctx context.Context, session ecomload.Session, csvPath, table string) (int64, error) {
	if err := s.scanner.VerifyFile(csvPath); err != nil {
		return 0, err
	}

	frame, err := s.reader.ReadFrame(csvPath)
	if err != nil {
		return 0, fmt.Errorf("%w: reading %s: %w", ecomload.ErrLoadFailed, csvPath, err)
	}
	s.logger.Verbose("Read %d rows, %d columns from %s", frame.Len(), len(frame.Columns), csvPath)
	if tbl, ok := schema.Lookup(table); ok && !slices.Contains(frame.Columns, tbl.PrimaryKey()) {
		s.logger.Verbose("%s has no %s column; SQLite assigns new keys", csvPath, tbl.PrimaryKey())
	}

	rows, err := session.Append(ctx, table, frame)
	if err != nil {
		return 0, fmt.Errorf("%w: %s into %s: %w", ecomload.ErrLoadFailed, csvPath, table, err)
	}
	return rows, nil
}

func checkTables(sources []ecomload.Source) error {
	var errs []error
	for _, src := range sources {
		if _, ok := schema.Lookup(src.Table); !ok {
			errs = append(errs, fmt.Errorf("unknown table %q for %s", src.Table, src.File))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ecomload.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

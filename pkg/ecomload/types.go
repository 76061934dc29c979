package ecomload

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Source pairs a CSV file in the data directory with the table it is appended to.
type Source struct {
	// File is the CSV file name, relative to the data directory
	File string

	// Table is the target table name; it must exist in the schema registry
	Table string
}

// DefaultSources returns the fixed load order: customers, products, orders,
// order items, payments. A fresh slice is returned on every call.
func DefaultSources() []Source {
	return []Source{
		{File: "customers.csv", Table: "customers"},
		{File: "products.csv", Table: "products"},
		{File: "orders.csv", Table: "orders"},
		{File: "order_items.csv", Table: "order_items"},
		{File: "payments.csv", Table: "payments"},
	}
}

// Config contains all parameters needed for a load run.
type Config struct {
	// DataDir is the directory holding the source CSV files
	DataDir string

	// DBPath is the SQLite database file; created if absent
	DBPath string

	// Sources is the ordered list of CSV-to-table pairs. Empty means DefaultSources().
	Sources []Source

	// BatchSize is the number of rows per INSERT. Zero means DefaultBatchSize.
	BatchSize int

	// Verbose enables detailed logging
	Verbose bool
}

// WithDefaults returns a copy of c with empty fields filled in.
func (c Config) WithDefaults() Config {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath
	}
	if len(c.Sources) == 0 {
		c.Sources = DefaultSources()
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	return c
}

// Validate checks if the Config has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, fmt.Errorf("DataDir is required: %w", ErrInvalidConfig))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, fmt.Errorf("DBPath is required: %w", ErrInvalidConfig))
	}
	if c.BatchSize < 0 {
		errs = append(errs, fmt.Errorf("batch size cannot be negative: %w", ErrInvalidConfig))
	}

	seen := make(map[string]bool, len(c.Sources))
	for i, src := range c.Sources {
		if src.File == "" || src.Table == "" {
			errs = append(errs, fmt.Errorf("source %d needs both a file and a table: %w", i, ErrInvalidConfig))
			continue
		}
		if filepath.Base(src.File) != src.File {
			errs = append(errs, fmt.Errorf("source file %q must be a plain file name: %w", src.File, ErrInvalidConfig))
		}
		if seen[src.Table] {
			errs = append(errs, fmt.Errorf("table %q listed more than once: %w", src.Table, ErrInvalidConfig))
		}
		seen[src.Table] = true
	}

	return errors.Join(errs...)
}

// ColumnKind is the storage class inferred for a CSV column.
type ColumnKind int

const (
	// KindText holds arbitrary strings. Columns with no values at all are text.
	KindText ColumnKind = iota
	// KindInteger holds values that all parse as base-10 int64.
	KindInteger
	// KindReal holds values that all parse as float64.
	KindReal
	// KindBool holds True/False literals; SQLite stores them as 1 and 0.
	KindBool
)

func (k ColumnKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindBool:
		return "boolean"
	default:
		return "text"
	}
}

// Frame is a CSV file read into memory: header names, the kind inferred for
// each column, and typed row values. A nil value is a missing cell.
type Frame struct {
	Columns []string
	Kinds   []ColumnKind
	Rows    [][]any
}

// Len returns the number of data rows.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Rows)
}

// Records converts the rows to column-name keyed maps, preserving row order.
func (f *Frame) Records() []map[string]any {
	records := make([]map[string]any, 0, f.Len())
	for _, row := range f.Rows {
		rec := make(map[string]any, len(f.Columns))
		for i, col := range f.Columns {
			rec[col] = row[i]
		}
		records = append(records, rec)
	}
	return records
}

// TableResult reports how many rows were appended to one table.
type TableResult struct {
	Source Source
	Rows   int64
}

// Summary describes a completed run.
type Summary struct {
	RunID    uuid.UUID
	DBPath   string
	Tables   []TableResult
	Duration time.Duration
}

// TotalRows returns the number of rows appended across all tables.
func (s Summary) TotalRows() int64 {
	var total int64
	for _, t := range s.Tables {
		total += t.Rows
	}
	return total
}

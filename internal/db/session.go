package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// Session is a single-connection SQLite session.
// Thread-Safety: NOT safe for concurrent use; a run is strictly sequential.
type Session struct {
	db        *gorm.DB
	batchSize int
}

// DB exposes the gorm handle for read-side checks.
func (s *Session) DB() *gorm.DB { return s.db }

// Exec runs a statement that returns no rows.
func (s *Session) Exec(ctx context.Context, statement string) error {
	return s.db.WithContext(ctx).Exec(statement).Error
}

// Append inserts every row of frame into table, in row order, within one
// transaction. Rows are matched to table columns by header name.
func (s *Session) Append(ctx context.Context, table string, frame *ecomload.Frame) (int64, error) {
	if frame.Len() == 0 {
		return 0, nil
	}

	records := frame.Records()
	batchSize := rowsPerStatement(s.batchSize, len(frame.Columns))

	var written int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table(table).CreateInBatches(records, batchSize)
		if result.Error != nil {
			return result.Error
		}
		written = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to append %d rows to %s: %w", len(records), table, err)
	}

	return written, nil
}

// rowsPerStatement caps batchSize so one INSERT never binds more than
// MaxBoundVariables values.
func rowsPerStatement(batchSize, columns int) int {
	if columns <= 0 {
		return batchSize
	}
	return max(1, min(batchSize, MaxBoundVariables/columns))
}

// Count returns the number of rows in table.
func (s *Session) Count(ctx context.Context, table string) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Table(table).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return n, nil
}

// Close releases the underlying connection.
func (s *Session) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

package ecomload

import "context"

// Session is a database session scoped to a single run.
// Implementations are not required to be safe for concurrent use.
type Session interface {
	// Exec runs a single statement that returns no rows.
	Exec(ctx context.Context, statement string) error

	// Append inserts every row of frame into table in row order and
	// returns the number of rows written.
	Append(ctx context.Context, table string, frame *Frame) (int64, error)

	// Close releases the underlying connection.
	Close() error
}

// FrameReader reads a CSV file into a Frame.
type FrameReader interface {
	ReadFrame(path string) (*Frame, error)
}

// Connector opens the database session a run writes through.
type Connector interface {
	Open(ctx context.Context, dbPath string) (Session, error)
}

// SourceScanner checks the data directory and the CSV files in it.
type SourceScanner interface {
	// VerifyDirectory returns ErrMissingDirectory when dir is absent.
	VerifyDirectory(dir string) error

	// VerifyFile returns ErrMissingFile when path is absent.
	VerifyFile(path string) error

	// Unreferenced lists CSV files in dir that no source refers to.
	Unreferenced(dir string, sources []Source) ([]string, error)
}

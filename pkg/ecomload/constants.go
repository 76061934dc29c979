package ecomload

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // All tables loaded
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (unknown flags, extra args)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitLoadFailed       = 13 // CSV parse or database write failed
	ExitMissingDirectory = 14 // Source directory not found
	ExitMissingFile      = 15 // Required CSV file not found
)

const (
	// DefaultDataDir is the source directory used when none is configured,
	// resolved relative to the working directory.
	DefaultDataDir = "data"

	// DefaultDBPath is the SQLite database file used when none is configured.
	DefaultDBPath = "ecommerce.db"

	// SuccessMessage is printed to stdout once every table has been loaded.
	SuccessMessage = "Data Ingested Successfully"

	// DefaultBatchSize is the number of rows sent per INSERT statement.
	// The store lowers it for any table where it would exceed SQLite's bound-parameter limit.
	DefaultBatchSize = 500
)

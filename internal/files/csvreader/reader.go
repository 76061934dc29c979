package csvreader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vvka-141/ecomload/internal/files/filesystem"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

const utf8BOM = "\ufeff"

// missingMarkers are cell values read as missing rather than as text.
var missingMarkers = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// boolValues are the literals read as booleans when a whole column uses them.
var boolValues = map[string]bool{
	"True":  true,
	"TRUE":  true,
	"true":  true,
	"False": false,
	"FALSE": false,
	"false": false,
}

// Reader reads CSV files through a filesystem provider.
type Reader struct {
	fsProvider filesystem.FileSystemProvider
}

// NewReader creates a Reader over the OS filesystem.
func NewReader() *Reader {
	return &Reader{fsProvider: filesystem.NewOSFileSystem()}
}

// NewReaderWithFS creates a Reader with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewReaderWithFS(fsProvider filesystem.FileSystemProvider) *Reader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Reader{fsProvider: fsProvider}
}

// ReadFrame reads the CSV at path. The first record is the header; every
// following record must have the same number of fields.
func (r *Reader) ReadFrame(path string) (*ecomload.Frame, error) {
	f, err := r.fsProvider.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	frame, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return frame, nil
}

// Parse reads CSV content from src into a Frame.
func Parse(src io.Reader) (*ecomload.Frame, error) {
	cr := csv.NewReader(src)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no header row")
		}
		return nil, err
	}

	columns, err := normalizeHeader(header)
	if err != nil {
		return nil, err
	}

	var raw [][]string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		raw = append(raw, record)
	}

	kinds := make([]ecomload.ColumnKind, len(columns))
	for i := range columns {
		kinds[i] = inferKind(raw, i)
	}

	rows := make([][]any, len(raw))
	for r, record := range raw {
		row := make([]any, len(columns))
		for c, cell := range record {
			row[c], err = convert(cell, kinds[c])
			if err != nil {
				// line r+2: one for the header, one for 1-based numbering
				return nil, fmt.Errorf("line %d, column %q: %w", r+2, columns[c], err)
			}
		}
		rows[r] = row
	}

	return &ecomload.Frame{Columns: columns, Kinds: kinds, Rows: rows}, nil
}

func normalizeHeader(header []string) ([]string, error) {
	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("header column %d is empty", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate header column %q", name)
		}
		seen[name] = true
		columns[i] = name
	}
	return columns, nil
}

// IsMissing reports whether a raw cell is read as a missing value.
func IsMissing(cell string) bool {
	return missingMarkers[cell]
}

func inferKind(raw [][]string, col int) ecomload.ColumnKind {
	present := false
	isBool, isInt, isReal := true, true, true
	for _, record := range raw {
		cell := record[col]
		if IsMissing(cell) {
			continue
		}
		present = true
		v := strings.TrimSpace(cell)
		if _, ok := boolValues[v]; !ok {
			isBool = false
		}
		if isInt {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				isInt = false
			}
		}
		if isReal {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				isReal = false
			}
		}
		if !isBool && !isReal {
			return ecomload.KindText
		}
	}

	switch {
	case !present:
		return ecomload.KindText
	case isBool:
		return ecomload.KindBool
	case isInt:
		return ecomload.KindInteger
	case isReal:
		return ecomload.KindReal
	}
	return ecomload.KindText
}

func convert(cell string, kind ecomload.ColumnKind) (any, error) {
	if IsMissing(cell) {
		return nil, nil
	}
	switch kind {
	case ecomload.KindInteger:
		return strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
	case ecomload.KindReal:
		return strconv.ParseFloat(strings.TrimSpace(cell), 64)
	case ecomload.KindBool:
		return boolValues[strings.TrimSpace(cell)], nil
	default:
		return cell, nil
	}
}

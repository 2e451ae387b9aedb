package barview

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"kline-tools/internal/model"
)

// Table is an in-memory kline table in file order. Rows are chronological;
// the previewer never reorders or repairs them.
type Table struct {
	Bars []model.Bar
}

// Len returns the number of rows in the table.
func (t Table) Len() int { return len(t.Bars) }

// LoadError reports a file that could not be opened for preview.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load %s: %v", e.Path, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// DecodeError reports a file that exists but could not be decoded into the
// expected kline column layout.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.Path, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// Load reads a parquet kline file and materializes all rows.
// A missing file yields *LoadError, an undecodable payload *DecodeError.
func Load(path string) (Table, error) {
	if _, err := os.Stat(path); err != nil {
		return Table{}, &LoadError{Path: path, Err: err}
	}
	bars, err := parquet.ReadFile[model.Bar](path)
	if err != nil {
		return Table{}, &DecodeError{Path: path, Err: err}
	}
	return Table{Bars: bars}, nil
}

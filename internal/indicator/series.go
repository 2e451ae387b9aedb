// Package indicator loads indicator value series exported as headerless CSV
// side files. A series carries no timestamps: alignment with a kline table is
// positional and the caller's responsibility.
package indicator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Series is an ordered sequence of indicator values.
type Series struct {
	Name   string
	Values []float64
}

// LoadCSV reads one value per record from a headerless CSV file. Only the
// first field of each record is used. The series name is the file name
// without its extension.
func LoadCSV(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, fmt.Errorf("open series %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return Series{}, fmt.Errorf("read series %s: %w", path, err)
	}

	s := Series{
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Values: make([]float64, 0, len(records)),
	}
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return Series{}, fmt.Errorf("series %s row %d: %w", path, i, err)
		}
		s.Values = append(s.Values, v)
	}
	return s, nil
}

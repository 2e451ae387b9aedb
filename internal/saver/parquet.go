package saver

import (
	"github.com/parquet-go/parquet-go"

	"kline-tools/internal/model"
)

// ParquetSaver writes bars as a parquet file with the on-disk kline schema.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(bars []model.Bar, path string) error {
	return parquet.WriteFile(path, bars)
}

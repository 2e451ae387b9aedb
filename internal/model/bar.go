package model

// Bar represents one kline (open/high/low/close plus open/close timestamps).
// Shared by the previewer, fetcher and savers (json, csv, parquet).
// Parquet column names keep the spaces used by the kline files on disk.
type Bar struct {
	OpenTime  int64   `json:"openTime" parquet:"Open Time"` // Unix timestamp in milliseconds
	Open      float64 `json:"open" parquet:"Open"`
	High      float64 `json:"high" parquet:"High"`
	Low       float64 `json:"low" parquet:"Low"`
	Close     float64 `json:"close" parquet:"Close"`
	Volume    float64 `json:"volume,omitempty" parquet:"Volume,optional"`
	CloseTime int64   `json:"closeTime" parquet:"Close Time"` // Unix timestamp in milliseconds
}

package fetch

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"kline-tools/internal/model"
)

// DecodeKlines parses the positional kline arrays Binance returns:
// [openTime, open, high, low, close, volume, closeTime, ...]. Timestamps come
// as JSON numbers, prices and volume as strings.
func DecodeKlines(data []byte) ([]model.Bar, error) {
	var rows [][]json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse klines payload: %w", err)
	}

	bars := make([]model.Bar, 0, len(rows))
	for i, row := range rows {
		if len(row) < 7 {
			return nil, fmt.Errorf("kline %d: got %d fields, want at least 7", i, len(row))
		}
		b, err := decodeKline(row)
		if err != nil {
			return nil, fmt.Errorf("kline %d: %w", i, err)
		}
		bars = append(bars, b)
	}
	return bars, nil
}

func decodeKline(row []json.RawMessage) (model.Bar, error) {
	var b model.Bar
	var err error
	if b.OpenTime, err = klineInt(row[0]); err != nil {
		return b, fmt.Errorf("open time: %w", err)
	}
	if b.Open, err = klineFloat(row[1]); err != nil {
		return b, fmt.Errorf("open: %w", err)
	}
	if b.High, err = klineFloat(row[2]); err != nil {
		return b, fmt.Errorf("high: %w", err)
	}
	if b.Low, err = klineFloat(row[3]); err != nil {
		return b, fmt.Errorf("low: %w", err)
	}
	if b.Close, err = klineFloat(row[4]); err != nil {
		return b, fmt.Errorf("close: %w", err)
	}
	if b.Volume, err = klineFloat(row[5]); err != nil {
		return b, fmt.Errorf("volume: %w", err)
	}
	if b.CloseTime, err = klineInt(row[6]); err != nil {
		return b, fmt.Errorf("close time: %w", err)
	}
	return b, nil
}

func klineInt(raw json.RawMessage) (int64, error) {
	var v int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// klineFloat accepts both quoted decimal strings and bare numbers.
func klineFloat(raw json.RawMessage) (float64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseFloat(s, 64)
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, err
	}
	return v, nil
}

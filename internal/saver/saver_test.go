package saver

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/parquet-go/parquet-go"

	"kline-tools/internal/model"
)

var sampleBars = []model.Bar{
	{OpenTime: 0, Open: 100, High: 101, Low: 99, Close: 100.5, Volume: 1000, CloseTime: 3599999},
	{OpenTime: 3600000, Open: 100.5, High: 102, Low: 100, Close: 101, Volume: 1200, CloseTime: 7199999},
}

func TestNewPacketSaver(t *testing.T) {
	tests := []struct {
		format string
		ext    string
	}{
		{"csv", "csv"},
		{"parquet", "parquet"},
		{"json", "json"},
		{" Parquet ", "parquet"},
	}
	for _, tt := range tests {
		s := NewPacketSaver(tt.format)
		if s == nil {
			t.Fatalf("NewPacketSaver(%q) = nil", tt.format)
		}
		if s.Extension() != tt.ext {
			t.Errorf("extension = %q, want %q", s.Extension(), tt.ext)
		}
	}
	if NewPacketSaver("avro") != nil {
		t.Error("unsupported format must return nil")
	}
}

func TestCSVSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.csv")
	if err := (CSVSaver{}).Save(sampleBars, path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != len(sampleBars)+1 {
		t.Fatalf("records = %d, want %d", len(records), len(sampleBars)+1)
	}
	if records[0][0] != "Open Time" || records[0][6] != "Close Time" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "0" || records[2][0] != "3600000" {
		t.Errorf("open times = %q, %q", records[1][0], records[2][0])
	}
}

func TestJSONSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.json")
	if err := (JSONSaver{}).Save(sampleBars, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []model.Bar
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != len(sampleBars) || got[1] != sampleBars[1] {
		t.Errorf("round trip = %+v", got)
	}
}

func TestParquetSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.parquet")
	if err := (ParquetSaver{}).Save(sampleBars, path); err != nil {
		t.Fatal(err)
	}
	got, err := parquet.ReadFile[model.Bar](path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(sampleBars) || got[0] != sampleBars[0] {
		t.Errorf("round trip = %+v", got)
	}
}

package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

type ExportData struct {
	ID       string             `json:"id"`
	Seed     int64              `json:"seed"`
	Leds     int                `json:"leds"`
	FPS      int                `json:"fps"`
	Ticks    int                `json:"ticks"`
	Sparking int                `json:"sparking"`
	Cooling  int                `json:"cooling"`
	Columns  []string           `json:"columns"`
	Series   [][]float64        `json:"series"`
	Metrics  map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run's metadata and full metric series to w.
func ExportJSON(w io.Writer, meta *RunMetadata, series [][]float64) error {
	data := ExportData{
		ID:       meta.ID,
		Seed:     meta.Seed,
		Leds:     meta.Leds,
		FPS:      meta.FPS,
		Ticks:    meta.Ticks,
		Sparking: meta.Sparking,
		Cooling:  meta.Cooling,
		Columns:  meta.Columns,
		Series:   series,
		Metrics:  meta.Metrics,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a run's metric series as CSV to w.
func ExportCSV(w io.Writer, meta *RunMetadata, series [][]float64) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{"tick"}, meta.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, row := range series {
		record := make([]string, 0, len(row)+1)
		record = append(record, strconv.Itoa(i+1))
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Error()
}

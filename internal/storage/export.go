package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// ExportJSON writes a run's metadata and series as a single JSON document.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	series, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}

	doc := struct {
		Metadata     RunMetadata `json:"metadata"`
		Times        []float64   `json:"times"`
		Gestures     []string    `json:"gestures"`
		RestDistance []float64   `json:"rest_distance"`
		MeanSpeed    []float64   `json:"mean_speed"`
	}{*meta, series.Times, series.Gestures, series.RestDistance, series.MeanSpeed}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ExportCSV streams a run's series in csv form.
func (s *Store) ExportCSV(runID string, w io.Writer) error {
	series, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"time", "gesture", "rest_distance", "mean_speed"}); err != nil {
		return err
	}
	for i := range series.Times {
		row := []string{
			strconv.FormatFloat(series.Times[i], 'f', 6, 64),
			series.Gestures[i],
			strconv.FormatFloat(series.RestDistance[i], 'f', 6, 64),
			strconv.FormatFloat(series.MeanSpeed[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// Package storage persists finished runs as a directory per run:
// metadata.json with the parameter snapshot and summary metrics, and
// series.csv with the sampled expectation values.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/qusimlab/qusim/internal/scenario"
	"github.com/qusimlab/qusim/internal/solver"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string                `json:"id"`
	Scenario  string                `json:"scenario"`
	Timestamp time.Time             `json:"timestamp"`
	Stepper   string                `json:"stepper"`
	Params    scenario.ParameterSet `json:"params"`
	Metrics   map[string]float64    `json:"metrics"`
}

// Save writes one run to disk and returns its generated ID.
func (s *Store) Save(sel scenario.Selector, stepper string, params scenario.ParameterSet, metrics map[string]float64, res *solver.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", sel, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  string(sel),
		Timestamp: time.Now(),
		Stepper:   stepper,
		Params:    params.Clone(),
		Metrics:   metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, res); err != nil {
		return "", err
	}
	return runID, nil
}

// WriteCSV streams a result as CSV with one named column per series,
// plus bx/by/bz columns when the run tracked the Bloch vector.
func WriteCSV(out io.Writer, res *solver.Result) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{"time"}
	for _, ser := range res.Series {
		header = append(header, ser.Name)
	}
	hasBloch := len(res.Bloch) == len(res.Times) && len(res.Bloch) > 0
	if hasBloch {
		header = append(header, "bx", "by", "bz")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, t := range res.Times {
		row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
		for _, ser := range res.Series {
			row = append(row, strconv.FormatFloat(ser.Values[i], 'f', 6, 64))
		}
		if hasBloch {
			for _, v := range res.Bloch[i] {
				row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// List returns metadata for every stored run. Directories without a
// readable metadata.json are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads a run's CSV back into a Result. Bloch columns are
// reattached when present.
func (s *Store) LoadSeries(runID string) (*solver.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return &solver.Result{}, nil
	}

	header := records[0]
	blochStart := -1
	for i, name := range header {
		if name == "bx" {
			blochStart = i
			break
		}
	}
	seriesEnd := len(header)
	if blochStart > 0 {
		seriesEnd = blochStart
	}

	res := &solver.Result{}
	for _, name := range header[1:seriesEnd] {
		res.Series = append(res.Series, solver.Series{Name: name})
	}

	for _, rec := range records[1:] {
		if len(rec) != len(header) {
			continue
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		res.Times = append(res.Times, t)
		for j := 1; j < seriesEnd; j++ {
			v, _ := strconv.ParseFloat(rec[j], 64)
			res.Series[j-1].Values = append(res.Series[j-1].Values, v)
		}
		if blochStart > 0 {
			var b [3]float64
			for k := 0; k < 3; k++ {
				b[k], _ = strconv.ParseFloat(rec[blochStart+k], 64)
			}
			res.Bloch = append(res.Bloch, b)
		}
	}
	return res, nil
}

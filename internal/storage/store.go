// Package storage persists simulation runs under a data directory, one
// directory per run: metadata.json with the run parameters and final offsets,
// ticks.csv with the per-tick body positions.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/avela/gravibeat/internal/gravity"
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
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Ticks     int       `json:"ticks"`
	Dt        float64   `json:"dt"`
	Bodies    int       `json:"bodies"`
	Survivors int       `json:"survivors"`
	Offsets   []float64 `json:"offsets"`
}

// Save writes one run. snaps may be nil when the caller did not collect a
// trace; ticks.csv is written only when snapshots exist. Rows are ragged on
// purpose: bodies disappear mid-run, so later rows carry fewer positions.
func (s *Store) Save(dt float64, bodies int, result *gravity.Result, snaps []gravity.Snapshot) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Ticks:     result.Ticks,
		Dt:        dt,
		Bodies:    bodies,
		Survivors: result.Survivors,
		Offsets:   result.Offsets,
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

	if len(snaps) == 0 {
		return runID, nil
	}

	csvFile, err := os.Create(filepath.Join(runDir, "ticks.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"tick", "time"}
	for i := range snaps[0].Bodies {
		header = append(header, fmt.Sprintf("p%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, snap := range snaps {
		row := []string{
			strconv.Itoa(snap.Tick),
			strconv.FormatFloat(snap.Time, 'f', 6, 64),
		}
		for _, b := range snap.Bodies {
			row = append(row, strconv.FormatFloat(b.Position, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

// LoadTicks reads the per-tick trace back. Positions rows are ragged: each
// row holds only the bodies still alive at that tick.
func (s *Store) LoadTicks(runID string) (ticks []int, positions [][]float64, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "ticks.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []int{}, [][]float64{}, nil
	}

	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		tick, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		row := make([]float64, 0, len(record)-2)
		for _, field := range record[2:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		ticks = append(ticks, tick)
		positions = append(positions, row)
	}
	return ticks, positions, nil
}

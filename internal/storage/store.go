package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/phugoid/internal/flight"
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

// Float marshals non-finite values as null. encoding/json rejects
// NaN/Inf outright, and degenerate traces carry them legitimately.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Zt         float64   `json:"zt"`
	Z0         float64   `json:"z0"`
	Theta0     float64   `json:"theta0"`
	Steps      int       `json:"steps"`
	Ds         float64   `json:"ds"`
	C          Float     `json:"c"`
	FinalX     Float     `json:"final_x"`
	FinalZ     Float     `json:"final_z"`
	MinZ       Float     `json:"min_z"`
	MaxZ       Float     `json:"max_z"`
	Degenerate int       `json:"degenerate"`
}

func (s *Store) Save(path *flight.Path) (string, error) {
	runID := fmt.Sprintf("flight_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	sum := path.Summarize()
	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Zt:         path.Zt,
		Z0:         path.Z0,
		Theta0:     path.Theta0,
		Steps:      path.Steps,
		Ds:         path.Ds,
		C:          Float(path.C),
		FinalX:     Float(sum.FinalX),
		FinalZ:     Float(sum.FinalZ),
		MinZ:       Float(sum.MinZ),
		MaxZ:       Float(sum.MaxZ),
		Degenerate: sum.Degenerate,
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

	csvFile, err := os.Create(filepath.Join(runDir, "path.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "z"}); err != nil {
		return "", err
	}
	for i := range path.X {
		row := []string{
			strconv.FormatFloat(path.X[i], 'g', -1, 64),
			strconv.FormatFloat(path.Z[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()

	return runID, w.Error()
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run %s not found: %w", runID, err)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

// LoadPath rebuilds a traced path from a stored run.
func (s *Store) LoadPath(runID string) (*flight.Path, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, "path.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("run %s: empty path file", runID)
	}

	path := &flight.Path{
		C: float64(meta.C),
		Params: flight.Params{
			Zt:     meta.Zt,
			Z0:     meta.Z0,
			Theta0: meta.Theta0,
			Steps:  meta.Steps,
			Ds:     meta.Ds,
		},
	}
	for _, row := range rows[1:] {
		if len(row) != 2 {
			return nil, fmt.Errorf("run %s: malformed path row %v", runID, row)
		}
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, err
		}
		z, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, err
		}
		path.X = append(path.X, x)
		path.Z = append(path.Z, z)
	}

	return path, nil
}

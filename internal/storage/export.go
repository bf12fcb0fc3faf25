package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/phugoid/internal/flight"
)

type runExport struct {
	Meta RunMetadata `json:"metadata"`
	X    []Float     `json:"x"`
	Z    []Float     `json:"z"`
}

// ExportJSON writes run metadata plus the full coordinate buffers.
func ExportJSON(w io.Writer, meta *RunMetadata, path *flight.Path) error {
	out := runExport{Meta: *meta}
	out.X = make([]Float, len(path.X))
	out.Z = make([]Float, len(path.Z))
	for i := range path.X {
		out.X[i] = Float(path.X[i])
		out.Z[i] = Float(path.Z[i])
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ExportCSV writes the coordinate buffers as x,z rows.
func ExportCSV(w io.Writer, path *flight.Path) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"x", "z"}); err != nil {
		return err
	}
	for i := range path.X {
		row := []string{
			strconv.FormatFloat(path.X[i], 'f', 6, 64),
			strconv.FormatFloat(path.Z[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

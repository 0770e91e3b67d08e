package repository

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	geo "github.com/natevvv/ski-routing/pkg/geometry"
	"github.com/natevvv/ski-routing/pkg/trail"
)

// WriteNodes writes the coordinates in the node file format
func WriteNodes(w io.Writer, coords map[string]geo.Point) error {
	raw := make(map[string][2]float64, len(coords))
	for name, p := range coords {
		raw[name] = [2]float64{p.Lat(), p.Lon()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

// WriteTrails writes the records in the trail file format.
// The records get ascending numeric ids, so reading the file again keeps the order.
func WriteTrails(w io.Writer, records []trail.Record) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("{")
	for i, r := range records {
		fields, err := json.Marshal([]any{r.Start, r.End, r.Length, r.Rating, r.Name})
		if err != nil {
			return fmt.Errorf("trail %v: %w", r, err)
		}
		if i > 0 {
			bw.WriteString(",")
		}
		fmt.Fprintf(bw, "\n  %q: %s", strconv.Itoa(i+1), fields)
	}
	bw.WriteString("\n}\n")
	return bw.Flush()
}

// WriteClosedTrails writes one name per line
func WriteClosedTrails(w io.Writer, closed []string) error {
	bw := bufio.NewWriter(w)
	for _, name := range closed {
		fmt.Fprintln(bw, name)
	}
	return bw.Flush()
}

// Save writes all data files into dir
func Save(dir string, files Files, data *Data) error {
	if err := saveFile(filepath.Join(dir, files.Nodes), func(w io.Writer) error { return WriteNodes(w, data.Coordinates) }); err != nil {
		return err
	}
	if err := saveFile(filepath.Join(dir, files.Trails), func(w io.Writer) error { return WriteTrails(w, data.Records) }); err != nil {
		return err
	}
	if files.Closed == "" || len(data.Closed) == 0 {
		return nil
	}
	closed := append([]string(nil), data.Closed...)
	sort.Strings(closed)
	return saveFile(filepath.Join(dir, files.Closed), func(w io.Writer) error { return WriteClosedTrails(w, closed) })
}

func saveFile(filename string, write func(io.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("could not write %s: %w", filename, err)
	}
	return file.Close()
}

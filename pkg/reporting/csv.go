package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/quantfold/gridsim/internal/backtest"
)

// CSVReporter writes the equity curve to a CSV file, the input expected by
// external plotting tools (the snapshot sequence is the visualization
// surface; no in-process plotting happens here).
type CSVReporter struct {
	path string
}

// NewCSVReporter creates a reporter writing to the given path.
func NewCSVReporter(path string) *CSVReporter {
	return &CSVReporter{path: path}
}

// Report writes one row per portfolio snapshot.
func (r *CSVReporter) Report(results *backtest.Results) error {
	if dir := filepath.Dir(r.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(r.path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"bar", "date", "cash", "value"}); err != nil {
		return err
	}
	for _, snap := range results.Snapshots {
		row := []string{
			strconv.Itoa(snap.Bar),
			snap.Timestamp.Format("2006-01-02"),
			strconv.FormatFloat(snap.Cash, 'f', 2, 64),
			strconv.FormatFloat(snap.Value, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

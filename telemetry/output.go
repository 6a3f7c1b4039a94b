package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// OutputManager handles structured engine output with CSV logging.
type OutputManager struct {
	dir        string
	reportFile *os.File
	perfFile   *os.File

	// Track if headers have been written
	reportHeaderWritten bool
	perfHeaderWritten   bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "report.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating report.csv: %w", err)
	}
	om.reportFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.reportFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	return om.dir
}

// WriteBodies appends generation report rows.
func (om *OutputManager) WriteBodies(records []BodyRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}
	if !om.reportHeaderWritten {
		if err := gocsv.Marshal(records, om.reportFile); err != nil {
			return fmt.Errorf("writing report rows: %w", err)
		}
		om.reportHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.reportFile); err != nil {
		return fmt.Errorf("writing report rows: %w", err)
	}
	return nil
}

// WritePerf appends perf rows.
func (om *OutputManager) WritePerf(records []PerfRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}
	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf rows: %w", err)
		}
		om.perfHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
		return fmt.Errorf("writing perf rows: %w", err)
	}
	return nil
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	if om.reportFile != nil {
		if err := om.reportFile.Close(); err != nil {
			firstErr = err
		}
	}
	if om.perfFile != nil {
		if err := om.perfFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

package stats

import (
	"fmt"
	"os"
	"path/filepath"

	"rsnake/config"

	"github.com/gocarina/gocsv"
)

// OutputManager writes session telemetry as CSV files.
type OutputManager struct {
	dir         string
	gamesFile   *os.File
	summaryFile *os.File

	gamesHeaderWritten bool
}

// NewOutputManager creates the output directory and files.
// Returns nil if dir is empty (output disabled); all methods accept a nil receiver.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "games.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating games.csv: %w", err)
	}
	om.gamesFile = f

	f, err = os.Create(filepath.Join(dir, "summary.csv"))
	if err != nil {
		om.gamesFile.Close()
		return nil, fmt.Errorf("creating summary.csv: %w", err)
	}
	om.summaryFile = f

	return om, nil
}

// WriteConfig saves the configuration used for the session.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteGame appends one record to games.csv.
func (om *OutputManager) WriteGame(rec GameRecord) error {
	if om == nil {
		return nil
	}

	records := []GameRecord{rec}
	if !om.gamesHeaderWritten {
		if err := gocsv.Marshal(records, om.gamesFile); err != nil {
			return fmt.Errorf("writing game record: %w", err)
		}
		om.gamesHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.gamesFile); err != nil {
			return fmt.Errorf("writing game record: %w", err)
		}
	}
	return nil
}

// WriteSummary writes the session summary to summary.csv.
func (om *OutputManager) WriteSummary(sum Summary) error {
	if om == nil {
		return nil
	}
	if err := gocsv.Marshal([]Summary{sum}, om.summaryFile); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files. Closing twice is a no-op.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.gamesFile != nil {
		if err := om.gamesFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		om.gamesFile = nil
	}
	if om.summaryFile != nil {
		if err := om.summaryFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		om.summaryFile = nil
	}
	return firstErr
}

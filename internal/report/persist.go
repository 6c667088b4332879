//go:generate mockgen -source=persist.go -destination=mocks/mock_writer.go -package=mocks

package report

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultFileName is the name of the report file written next to the
	// executable when no explicit path is given.
	DefaultFileName = "results_n100.txt"
	// AutoPersistN is the exponent for which the report is always persisted.
	AutoPersistN = 100
)

// Writer persists a rendered report.
type Writer interface {
	// WriteReport writes data to path, replacing any existing file.
	WriteReport(path string, data []byte) error
}

// FileWriter writes reports to the local filesystem.
type FileWriter struct{}

var _ Writer = FileWriter{}

// WriteReport creates missing parent directories, then writes the whole
// file at once.
func (FileWriter) WriteReport(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	return nil
}

// ShouldPersist reports whether the run's report must be written to a file.
func ShouldPersist(n uint64, outFile string) bool {
	return n == AutoPersistN || outFile != ""
}

// ResolvePath returns outFile verbatim when set, otherwise the default file
// inside programDir.
func ResolvePath(outFile, programDir string) string {
	if outFile != "" {
		return outFile
	}
	return filepath.Join(programDir, DefaultFileName)
}

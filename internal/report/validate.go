package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ValidationResult is the outcome of checking one generated PDF.
type ValidationResult struct {
	Path string
	Err  error // nil when the file is structurally sound
}

// ValidateDir runs a pdfcpu structural validation over every .pdf in dir.
// It answers whether the reports this tool wrote are actually openable,
// without rendering them.
func ValidateDir(dir string) ([]ValidationResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output folder %s: %w", dir, err)
	}

	var results []ValidationResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		results = append(results, ValidationResult{
			Path: path,
			Err:  api.ValidateFile(path, nil),
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	return results, nil
}

package screenshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"shotbook/internal/logger"
)

// Scan enumerates the input folder and returns the screenshots whose names
// parse, sorted by timestamp then filename. Files that do not match the
// naming convention are counted and skipped with a warning; only a failure
// to read the folder itself is an error.
func Scan(dir string) ([]File, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read input folder %s: %w", dir, err)
	}

	var files []File
	skipped := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, err := ParseTimestamp(entry.Name())
		if err != nil {
			logger.GetLogger().Warnf("Skipping %s: %v", entry.Name(), err)
			skipped++
			continue
		}
		files = append(files, File{
			Path:      filepath.Join(dir, entry.Name()),
			Name:      entry.Name(),
			Timestamp: ts,
		})
	}

	sortFiles(files)

	return files, skipped, nil
}

// sortFiles orders by timestamp ascending, ties broken by filename so the
// result is fully deterministic.
func sortFiles(files []File) {
	sort.Slice(files, func(i, j int) bool {
		if !files[i].Timestamp.Equal(files[j].Timestamp) {
			return files[i].Timestamp.Before(files[j].Timestamp)
		}
		return files[i].Name < files[j].Name
	})
}

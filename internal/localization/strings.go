package localization

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StringsFile is the strings file inside every .lproj directory.
const StringsFile = "Localizable.strings"

// ErrInvalidCount is returned for a non-positive trim count.
var ErrInvalidCount = errors.New("line count must be at least 1")

// TrimResult describes one trimmed strings file.
type TrimResult struct {
	Path    string
	Removed int
}

// RemoveTrailingEntries drops the last count lines of the Localizable.strings
// file in every .lproj directory directly under bundleDir. The new last line
// loses its trailing whitespace. Directories without a strings file are
// skipped.
func RemoveTrailingEntries(bundleDir string, count int) ([]TrimResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	entries, err := os.ReadDir(bundleDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list bundle %s: %w", bundleDir, err)
	}

	var results []TrimResult

	for _, entry := range entries {
		if !entry.IsDir() || filepath.Ext(entry.Name()) != ".lproj" {
			continue
		}

		path := filepath.Join(bundleDir, entry.Name(), StringsFile)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}

		removed, err := trimFile(path, count)
		if err != nil {
			return results, err
		}

		results = append(results, TrimResult{Path: path, Removed: removed})
	}

	return results, nil
}

func trimFile(path string, count int) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	removed := min(count, len(lines))
	lines = lines[:len(lines)-removed]

	if len(lines) > 0 {
		lines[len(lines)-1] = strings.TrimRightFunc(lines[len(lines)-1], func(r rune) bool {
			return r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strings.Join(lines, "")), info.Mode().Perm()); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return removed, nil
}

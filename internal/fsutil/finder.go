// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// MatchesSuffix reports whether name ends with exactly the given filename
// suffix, case-insensitively. The comparison is anchored at the end of
// the name, so a search for ".xls" never matches ".xlsx": a suffix that
// is a strict superset of the target does not qualify.
func MatchesSuffix(name, suffix string) bool {
	if suffix == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(suffix))
}

// FindFilesBySuffix recursively searches the given root path for all
// files whose name matches the suffix per MatchesSuffix. It returns their
// full paths in walk order.
func FindFilesBySuffix(rootPath string, suffix string) ([]string, error) {
	if suffix == "" {
		panic("suffix must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && MatchesSuffix(d.Name(), suffix) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

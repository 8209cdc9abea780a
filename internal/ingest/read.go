package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/bomres/internal/bom"
	"github.com/vk/bomres/internal/ctxlog"
	"github.com/vk/bomres/internal/fsutil"
)

// ReadFile loads a BOM table from path, dispatching on the filename
// suffix: .xlsx, .zip, .csv.gz, and .csv (the fallback). A directory is
// scanned for the first spreadsheet file it contains.
func ReadFile(ctx context.Context, path, sheet string) (bom.Table, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access input %s: %w", path, err)
	}
	if info.IsDir() {
		resolved, err := firstSpreadsheetIn(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Resolved input directory to file.", "dir", path, "file", resolved)
		path = resolved
	}

	switch {
	case fsutil.MatchesSuffix(path, ".zip"):
		return ParseZip(ctx, path, sheet)

	case fsutil.MatchesSuffix(path, ".xlsx"):
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open input %s: %w", path, err)
		}
		defer f.Close()
		return ParseXLSX(ctx, f, sheet)

	case fsutil.MatchesSuffix(path, ".csv.gz"):
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open input %s: %w", path, err)
		}
		defer f.Close()
		return ParseGzipCSV(ctx, f)

	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open input %s: %w", path, err)
		}
		defer f.Close()
		return ParseCSV(ctx, f)
	}
}

// firstSpreadsheetIn returns the first spreadsheet file found under dir,
// trying suffixes in preference order.
func firstSpreadsheetIn(dir string) (string, error) {
	for _, suffix := range spreadsheetSuffixes {
		files, err := fsutil.FindFilesBySuffix(dir, suffix)
		if err != nil {
			return "", fmt.Errorf("failed to scan %s: %w", dir, err)
		}
		if len(files) > 0 {
			return files[0], nil
		}
	}
	return "", fmt.Errorf("no spreadsheet file found under %s", dir)
}

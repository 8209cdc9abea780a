package ingest

import (
	"context"
	"fmt"

	"github.com/klauspost/compress/zip"

	"github.com/vk/bomres/internal/bom"
	"github.com/vk/bomres/internal/ctxlog"
	"github.com/vk/bomres/internal/fsutil"
)

// spreadsheetSuffixes lists the archive entry suffixes considered
// candidate spreadsheets, in preference order. Matching is anchored at
// the end of the entry name (fsutil.MatchesSuffix), so a target suffix
// never picks up an entry whose suffix merely extends it.
var spreadsheetSuffixes = []string{".xlsx", ".csv"}

// ParseZip extracts the first candidate spreadsheet entry from a ZIP
// archive and parses it. Entries are tried in suffix preference order and
// then in archive order.
func ParseZip(ctx context.Context, path, sheet string) (bom.Table, error) {
	logger := ctxlog.FromContext(ctx)

	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	defer rc.Close()

	for _, suffix := range spreadsheetSuffixes {
		for _, entry := range rc.File {
			if !fsutil.MatchesSuffix(entry.Name, suffix) {
				continue
			}
			logger.Debug("Extracting archive entry.", "entry", entry.Name)

			f, err := entry.Open()
			if err != nil {
				return nil, fmt.Errorf("failed to extract %s: %w", entry.Name, err)
			}
			var table bom.Table
			if suffix == ".xlsx" {
				table, err = ParseXLSX(ctx, f, sheet)
			} else {
				table, err = ParseCSV(ctx, f)
			}
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", entry.Name, err)
			}
			return table, nil
		}
	}

	return nil, fmt.Errorf("no spreadsheet entry found in archive %s", path)
}

package ingest

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/vk/bomres/internal/bom"
	"github.com/vk/bomres/internal/ctxlog"
)

// ParseXLSX reads one sheet of an XLSX workbook into a BOM table. An
// empty sheet name selects the workbook's first sheet.
func ParseXLSX(ctx context.Context, r io.Reader, sheet string) (bom.Table, error) {
	logger := ctxlog.FromContext(ctx)

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	logger.Debug("Reading workbook sheet.", "sheet", sheet)

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return ParseRecords(ctx, records), nil
}

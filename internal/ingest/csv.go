package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/vk/bomres/internal/bom"
)

// ParseCSV reads an entire CSV stream into a BOM table.
func ParseCSV(ctx context.Context, r io.Reader) (bom.Table, error) {
	reader := csv.NewReader(r)
	// Exports frequently carry ragged trailing columns.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return ParseRecords(ctx, records), nil
}

// ParseGzipCSV reads a gzip-compressed CSV stream into a BOM table.
func ParseGzipCSV(ctx context.Context, r io.Reader) (bom.Table, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer zr.Close()
	return ParseCSV(ctx, zr)
}

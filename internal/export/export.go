// Package export writes a resolved BOM table back out as CSV, with the
// two derived columns appended after the source columns.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/vk/bomres/internal/bom"
)

// header is the fixed output column order.
var header = []string{
	"Level", "Sequence", "Material", "ParentRef", "UnitUsage", "Product",
	"SysComponent", "TotalUsage",
}

// WriteCSV writes the table to w as CSV, header first.
func WriteCSV(w io.Writer, t bom.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range t {
		record := []string{
			strconv.Itoa(row.Level),
			strconv.Itoa(row.Sequence),
			row.Material,
			row.ParentRef,
			strconv.FormatFloat(row.UnitUsage, 'g', -1, 64),
			row.Product,
			row.SysComponent,
			strconv.FormatFloat(row.TotalUsage, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

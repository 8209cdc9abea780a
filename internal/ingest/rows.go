package ingest

import (
	"context"
	"strconv"
	"strings"

	"github.com/vk/bomres/internal/bom"
	"github.com/vk/bomres/internal/ctxlog"
)

// columnMap holds the column position of each recognized field, or -1
// when the source does not carry it.
type columnMap struct {
	level    int
	sequence int
	material int
	parent   int
	usage    int
	product  int
}

// defaultColumns is the fixed column order assumed for headerless
// sources: level, sequence, material, parent reference, unit usage,
// product.
var defaultColumns = columnMap{level: 0, sequence: 1, material: 2, parent: 3, usage: 4, product: 5}

// headerAliases maps normalized header cell text to the field it names.
var headerAliases = map[string]string{
	"level": "level", "lvl": "level", "indenture": "level", "bom level": "level",

	"seq": "sequence", "sequence": "sequence", "seq no": "sequence", "no": "sequence",

	"material": "material", "material code": "material", "part number": "material",
	"pn": "material", "component": "material",

	"parent": "parent", "parent ref": "parent", "parent material": "parent",
	"parent pn": "parent", "next assembly": "parent",

	"usage": "usage", "unit usage": "usage", "qty": "usage", "quantity": "usage",
	"qty per": "usage",

	"product": "product", "product group": "product", "model": "product",
}

// detectColumns inspects the first record. When it names at least a level
// and a material column it is treated as a header and the mapped layout
// is returned with ok=true; otherwise the fixed default layout applies
// and the record is data.
func detectColumns(record []string) (columnMap, bool) {
	cm := columnMap{level: -1, sequence: -1, material: -1, parent: -1, usage: -1, product: -1}
	seen := false
	for i, cell := range record {
		field, ok := headerAliases[normalizeHeader(cell)]
		if !ok {
			continue
		}
		seen = true
		switch field {
		case "level":
			cm.level = i
		case "sequence":
			cm.sequence = i
		case "material":
			cm.material = i
		case "parent":
			cm.parent = i
		case "usage":
			cm.usage = i
		case "product":
			cm.product = i
		}
	}
	if !seen || cm.level < 0 || cm.material < 0 {
		return defaultColumns, false
	}
	return cm, true
}

func normalizeHeader(cell string) string {
	cell = strings.ToLower(strings.TrimSpace(cell))
	cell = strings.ReplaceAll(cell, "_", " ")
	cell = strings.ReplaceAll(cell, ".", "")
	return strings.Join(strings.Fields(cell), " ")
}

// ParseRecords converts raw records into a BOM table. The first record is
// treated as a header when it is recognizable as one. Rows whose level
// cannot be read are logged and skipped; the batch never fails on a
// single bad row.
func ParseRecords(ctx context.Context, records [][]string) bom.Table {
	logger := ctxlog.FromContext(ctx)

	var table bom.Table
	if len(records) == 0 {
		return table
	}

	cm, hasHeader := detectColumns(records[0])
	data := records
	if hasHeader {
		data = records[1:]
	}

	for i, record := range data {
		row, err := parseRow(cm, record)
		if err != nil {
			logger.Warn("Skipping unreadable BOM row.", "row", i+1, "error", err)
			continue
		}
		table = append(table, row)
	}
	return table
}

func parseRow(cm columnMap, record []string) (bom.Row, error) {
	level, err := strconv.Atoi(cell(record, cm.level))
	if err != nil {
		return bom.Row{}, err
	}

	sequence, _ := strconv.Atoi(cell(record, cm.sequence))

	// Unit usage defaults to 1.0 on a missing or non-numeric value.
	usage := 1.0
	if raw := cell(record, cm.usage); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			usage = parsed
		}
	}

	return bom.Row{
		Level:     level,
		Sequence:  sequence,
		Material:  cell(record, cm.material),
		ParentRef: cell(record, cm.parent),
		UnitUsage: usage,
		Product:   cell(record, cm.product),
	}, nil
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

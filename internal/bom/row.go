package bom

// Row is a single line of a flattened BOM export.
type Row struct {
	// Level is the indenture depth in the BOM tree; 0 or 1 denotes an
	// absolute root.
	Level int

	// Sequence is the physical row order, reassigned 1..N by Normalize.
	// Source exports carry their own sequence numbers but those are not
	// trustworthy; Normalize overwrites them unconditionally.
	Sequence int

	// Material is the component's identifying code.
	Material string

	// ParentRef names the immediate parent's material code. Empty for
	// rows that have no parent in the export.
	ParentRef string

	// UnitUsage is the quantity consumed per one unit of the immediate
	// parent. Defaults to 1.0 when the source value is missing or not
	// numeric.
	UnitUsage float64

	// Product is a descriptive grouping label. It plays no part in
	// resolution.
	Product string

	// SysComponent is the resolved canonical system-component code.
	// Written once per row by the resolver.
	SysComponent string

	// TotalUsage is the cumulative quantity of this row's component
	// consumed per one unit of its resolved terminal ancestor. Written
	// once per row by the resolver.
	TotalUsage float64
}

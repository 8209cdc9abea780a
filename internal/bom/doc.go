// Package bom holds the in-memory representation of a flattened,
// multi-level Bill-of-Materials export: the row model, the normalized
// table, and the material position index.
//
// The table is a physically-ordered list of rows. Each row records a
// component, its indenture level, and the material code of its immediate
// parent. Because component codes are reused at different tree positions,
// parent resolution must always walk strictly backward through the table;
// the Index and its NearestPreceding lookup are the only supported way to
// find a parent row.
package bom

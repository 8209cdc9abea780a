// Package engine is the hierarchy-resolution core. It takes a private
// snapshot of a flattened BOM table and derives, for every row, a
// canonical system-component classification and the cumulative quantity
// consumed per unit of that terminal ancestor.
//
// The engine is pure and synchronous. Parent rows are only ever found
// through a strictly-backward lookup bounded by the current row's
// sequence, because material codes are reused at different tree
// positions. Termination is decided by a fixed priority cascade: the
// primary prefix pattern first, then the level-bound special rules, with
// a documented tie-break between two reserved prefix classes.
//
// A single resolver instance must not be shared across goroutines; the
// per-row visited set is the only mutable state and is scoped to one
// row's resolution.
package engine

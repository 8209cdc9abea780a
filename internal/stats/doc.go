// Package stats computes the read-only summary of a resolved BOM table
// for display: how many rows were reclassified, and the distribution of
// cumulative usage.
package stats

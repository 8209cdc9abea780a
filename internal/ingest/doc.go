// Package ingest turns spreadsheet and CSV bytes into the in-memory BOM
// table the engine consumes. It handles plain CSV, gzip-compressed CSV,
// XLSX workbooks, and ZIP archives containing either.
//
// Parsing is defensive: a row with an unreadable level is logged and
// skipped, a missing or non-numeric unit usage defaults to 1.0, and
// column order is detected from the header when one is present. All I/O
// happens here, strictly before the engine is constructed; the engine
// only ever sees a fully materialized table.
package ingest

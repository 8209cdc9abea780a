package engine

import (
	"context"
	"strings"

	"github.com/vk/bomres/internal/bom"
	"github.com/vk/bomres/internal/ctxlog"
)

// rowResult holds one row's derived columns before they are committed.
type rowResult struct {
	sysComponent string
	totalUsage   float64
}

// Resolve computes both derived columns for every row and returns the
// resolved table. All rows are computed against the pristine snapshot
// first and committed afterward, so no row's resolution ever observes
// another row's derived columns.
//
// The returned table is the resolver's own snapshot; the caller's
// original table is untouched.
func (r *Resolver) Resolve(ctx context.Context) bom.Table {
	logger := ctxlog.FromContext(ctx)

	results := make([]rowResult, len(r.rows))
	for i := range r.rows {
		results[i] = r.resolveRow(i)
	}
	for i := range r.rows {
		r.rows[i].SysComponent = results[i].sysComponent
		r.rows[i].TotalUsage = results[i].totalUsage
	}

	if r.depthCapHits > 0 {
		logger.Warn("Depth cap reached during resolution; indenture data may be cyclic or malformed.",
			"hits", r.depthCapHits)
	}
	logger.Debug("Table resolved.", "rows", len(r.rows))
	return r.rows
}

// resolveRow applies the fixed priority cascade to one row. Every engine
// invocation gets a fresh visited set and is bounded by the row's own
// sequence.
func (r *Resolver) resolveRow(pos int) rowResult {
	row := r.rows[pos]

	// Absolute root: own material, own usage, no multiplication.
	if row.Level <= 1 {
		return rowResult{row.Material, row.UnitUsage}
	}

	// Own material terminates the walk; traverse only to accumulate
	// usage from true ancestors above it.
	if r.opts.Pattern.Match(row.Material) || r.opts.SpecialRules.Match(row.Level, row.Material) {
		_, usage := r.traverse(row.Material, row.UnitUsage, 0, row.Sequence, newVisited())
		return rowResult{row.Material, usage}
	}

	// Without a parent reference there is nothing to look upward through.
	ref := strings.TrimSpace(row.ParentRef)
	if ref == "" {
		return rowResult{row.Material, row.UnitUsage}
	}

	if r.opts.Pattern.Match(ref) {
		terminal, usage := r.traverse(ref, row.UnitUsage, 0, row.Sequence, newVisited())
		// A class-A reference can still be superseded by a class-B
		// ancestor found during the walk.
		if r.opts.ClassA.Match(ref) && r.opts.ClassB.Match(terminal) {
			return rowResult{terminal, usage}
		}
		return rowResult{ref, usage}
	}

	terminal, usage := r.traverse(ref, row.UnitUsage, 0, row.Sequence, newVisited())
	return rowResult{terminal, usage}
}

func newVisited() map[string]struct{} {
	return make(map[string]struct{})
}

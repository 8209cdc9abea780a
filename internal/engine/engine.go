package engine

import (
	"context"
	"strings"

	"github.com/vk/bomres/internal/bom"
	"github.com/vk/bomres/internal/ctxlog"
	"github.com/vk/bomres/internal/match"
)

// maxDepth bounds the upward walk. Exceeding it signals likely malformed
// indenture data (for example a parent-reference cycle); the walk stops
// defensively instead of reporting an error.
const maxDepth = 20

// Options carries the termination configuration for a Resolver.
type Options struct {
	// Pattern is the primary termination matcher.
	Pattern *match.Matcher

	// ClassA is the reserved lower-priority prefix class. When a primary
	// match is also a class-A match, the walk continues upward looking
	// for a class-B ancestor, which supersedes it.
	ClassA *match.Matcher

	// ClassB is the reserved higher-priority prefix class.
	ClassB *match.Matcher

	// SpecialRules is the secondary termination signal, evaluated only
	// when the pattern does not match.
	SpecialRules match.RuleSet
}

// Resolver resolves every row of a BOM table to its canonical system
// component and cumulative usage. It owns an exclusive, normalized
// snapshot of the input table for its whole lifetime; constructing one
// never mutates the caller's table.
type Resolver struct {
	rows  bom.Table
	index bom.Index
	opts  Options

	// depthCapHits counts defensive early returns from the depth guard,
	// surfaced to the caller as a data-quality diagnostic.
	depthCapHits int
}

// New constructs a Resolver over a private snapshot of rows. The snapshot
// is normalized (sequence reassigned 1..N) and indexed once; both are
// read-only afterward.
func New(ctx context.Context, rows bom.Table, opts Options) *Resolver {
	logger := ctxlog.FromContext(ctx)

	snapshot := rows.Clone()
	snapshot.Normalize()

	if opts.Pattern.Empty() {
		logger.Warn("Primary pattern matches nothing; only special rules can terminate a walk.")
	}

	r := &Resolver{
		rows:  snapshot,
		index: bom.BuildIndex(snapshot),
		opts:  opts,
	}
	logger.Debug("Resolver constructed.", "rows", len(snapshot), "materials", len(r.index))
	return r
}

// DepthCapHits returns how many traversals were stopped by the depth
// guard during resolution. A non-zero value indicates possible cyclic or
// malformed indenture data.
func (r *Resolver) DepthCapHits() int {
	return r.depthCapHits
}

// traverse walks strictly upward from startMaterial and returns the
// terminal material together with the cumulative usage.
//
// bound is an exclusive upper limit on the sequence of the row looked up
// for startMaterial; every hop re-bounds the lookup by the current row's
// own sequence, which enforces the strict-upward invariant. visited holds
// the materials on the active path of one top-level call; it must be
// fresh for every row.
//
// Any panic during a step is contained here and converted to a
// (startMaterial, usage) fallback so one bad row never aborts the batch.
func (r *Resolver) traverse(startMaterial string, usage float64, depth, bound int, visited map[string]struct{}) (terminal string, total float64) {
	defer func() {
		if rec := recover(); rec != nil {
			terminal, total = startMaterial, usage
		}
	}()

	if depth > maxDepth {
		r.depthCapHits++
		return startMaterial, usage
	}
	if _, onPath := visited[startMaterial]; onPath {
		return startMaterial, usage
	}
	visited[startMaterial] = struct{}{}
	defer delete(visited, startMaterial)

	pos := r.index.NearestPreceding(r.rows, startMaterial, bound)
	if pos < 0 {
		// The starting reference is outside the table.
		return startMaterial, usage
	}
	cur := r.rows[pos]
	parentRef := strings.TrimSpace(cur.ParentRef)
	if cur.Level <= 0 || parentRef == "" {
		return startMaterial, usage
	}

	// The parent lookup is bounded by the current row's own sequence,
	// never the outer bound.
	parentPos := r.index.NearestPreceding(r.rows, parentRef, cur.Sequence)
	if parentPos < 0 {
		// The chain escapes the dataset; the current material is terminal.
		return startMaterial, usage
	}
	parent := r.rows[parentPos]
	newUsage := usage * cur.UnitUsage

	switch {
	case r.opts.Pattern.Match(parent.Material):
		if r.opts.ClassA.Match(parent.Material) {
			// A class-B ancestor anywhere up the chain supersedes the
			// class-A match.
			up, upUsage := r.traverse(parent.Material, newUsage, depth+1, cur.Sequence, visited)
			if r.opts.ClassB.Match(up) {
				return up, upUsage
			}
			return parent.Material, upUsage
		}
		// Recurse purely to keep accumulating usage; the matched parent
		// stays the terminal regardless of what the walk above finds.
		_, upUsage := r.traverse(parent.Material, newUsage, depth+1, cur.Sequence, visited)
		return parent.Material, upUsage

	case r.opts.SpecialRules.Match(parent.Level, parent.Material):
		return parent.Material, newUsage

	default:
		return r.traverse(parent.Material, newUsage, depth+1, cur.Sequence, visited)
	}
}

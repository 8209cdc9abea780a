package bom

import "strings"

// Index maps a trimmed material code to the positions of its occurrences
// in the table, ordered by ascending Sequence. Rows with a blank material
// are excluded; they can never be resolved as a parent.
type Index map[string][]int

// BuildIndex builds the material index in one linear pass. The table must
// already be normalized so that position order and Sequence order agree.
func BuildIndex(t Table) Index {
	ix := make(Index, len(t))
	for pos := range t {
		material := strings.TrimSpace(t[pos].Material)
		if material == "" {
			continue
		}
		ix[material] = append(ix[material], pos)
	}
	return ix
}

// NearestPreceding returns the position of material's occurrence with the
// greatest Sequence strictly less than bound, or -1 when no such
// occurrence exists. The per-code position list is ascending, so scanning
// it backward yields the nearest preceding match without rescanning the
// table. A lookup without the bound would incorrectly match a later reuse
// of the same code as if it were its own ancestor.
func (ix Index) NearestPreceding(t Table, material string, bound int) int {
	positions := ix[strings.TrimSpace(material)]
	for i := len(positions) - 1; i >= 0; i-- {
		pos := positions[i]
		if t[pos].Sequence < bound {
			return pos
		}
	}
	return -1
}

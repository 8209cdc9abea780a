package bom

// Table is a physically-ordered sequence of BOM rows.
type Table []Row

// Clone returns a deep copy of the table. The resolver clones its input at
// construction time so repeated runs against the same caller-owned table
// are safe and independent.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// Normalize overwrites every row's Sequence with 1..N in physical order.
// All downstream ordering logic depends on a trustworthy, strictly
// increasing sequence, so this runs unconditionally before indexing.
func (t Table) Normalize() {
	for i := range t {
		t[i].Sequence = i + 1
	}
}

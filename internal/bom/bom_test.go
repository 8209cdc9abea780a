package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_OverwritesSequences(t *testing.T) {
	table := Table{
		{Material: "A", Sequence: 40},
		{Material: "B", Sequence: 2},
		{Material: "C", Sequence: 2},
	}

	table.Normalize()

	for i, row := range table {
		assert.Equal(t, i+1, row.Sequence)
	}
}

func TestClone_IsDeep(t *testing.T) {
	table := Table{{Material: "A", UnitUsage: 1}}

	clone := table.Clone()
	clone[0].Material = "B"
	clone[0].UnitUsage = 9

	assert.Equal(t, "A", table[0].Material)
	assert.Equal(t, 1.0, table[0].UnitUsage)
}

func TestClone_Nil(t *testing.T) {
	var table Table
	assert.Nil(t, table.Clone())
}

func TestBuildIndex_SkipsBlankMaterials(t *testing.T) {
	table := Table{
		{Material: "A"},
		{Material: "  "},
		{Material: ""},
		{Material: " A "},
	}
	table.Normalize()

	ix := BuildIndex(table)

	require.Len(t, ix, 1)
	assert.Equal(t, []int{0, 3}, ix["A"])
}

func TestNearestPreceding(t *testing.T) {
	table := Table{
		{Material: "A"}, // seq 1
		{Material: "B"}, // seq 2
		{Material: "A"}, // seq 3
		{Material: "A"}, // seq 4
	}
	table.Normalize()
	ix := BuildIndex(table)

	tests := []struct {
		name     string
		material string
		bound    int
		want     int
	}{
		{"latest below bound", "A", 4, 2},
		{"skips equal sequence", "A", 3, 0},
		{"nothing strictly before", "A", 1, -1},
		{"unknown material", "Z", 10, -1},
		{"high bound takes last", "A", 99, 3},
		{"trims lookup code", " B ", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ix.NearestPreceding(table, tt.material, tt.bound))
		})
	}
}

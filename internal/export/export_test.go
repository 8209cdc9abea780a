package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bomres/internal/bom"
)

func TestWriteCSV(t *testing.T) {
	table := bom.Table{
		{Level: 1, Sequence: 1, Material: "ROOT", UnitUsage: 1, Product: "P100", SysComponent: "ROOT", TotalUsage: 1},
		{Level: 3, Sequence: 2, Material: "X1", ParentRef: "45ABC", UnitUsage: 5, SysComponent: "45ABC", TotalUsage: 10},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, header, records[0])
	assert.Equal(t, []string{"1", "1", "ROOT", "", "1", "P100", "ROOT", "1"}, records[1])
	assert.Equal(t, []string{"3", "2", "X1", "45ABC", "5", "", "45ABC", "10"}, records[2])
}

func TestWriteCSV_EmptyTableStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, header, records[0])
}

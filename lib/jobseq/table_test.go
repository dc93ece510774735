package jobseq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTabulateUnionOfKeys(t *testing.T) {
	got := Tabulate([]map[string]any{
		{"a": 1, "b": 2},
		{"a": 3},
	})

	require.Equal(t, []string{"a", "b"}, got.Columns)
	require.Len(t, got.Rows, 2)
	require.Equal(t, Row{"a": 1, "b": 2}, got.Rows[0])
	require.Equal(t, Row{"a": 3, "b": nil}, got.Rows[1])
}

func TestTabulateEmpty(t *testing.T) {
	got := Tabulate(nil)
	require.Empty(t, got.Columns)
	require.Empty(t, got.Rows)
}

func TestTableColumn(t *testing.T) {
	table := Tabulate([]map[string]any{
		{"a": 1},
		{"a": 3},
		{"b": 5},
	})
	require.Equal(t, []any{1, 3, nil}, table.Column("a"))
}

func TestMappingIdentity(t *testing.T) {
	raw := map[string]any{"unemployment": 4.2, "period": "2025Q4"}
	require.Equal(t, raw, Mapping(raw))
}

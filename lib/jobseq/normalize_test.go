package jobseq

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeFixture(t *testing.T, fixture string) map[string]any {
	t.Helper()
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(fixture), &raw))
	return raw
}

func TestDecodeGrid(t *testing.T) {
	got, err := decodeGrid(decodeFixture(t, gridFixture))
	require.NoError(t, err)

	require.Equal(t, []string{"Occupation", "Employment"}, got.Columns)
	require.Len(t, got.Rows, 2)
	require.Equal(t, "Total - All", got.Rows[0]["Occupation"])
	require.EqualValues(t, 1250, got.Rows[0]["Employment"])
	require.Equal(t, "Management", got.Rows[1]["Occupation"])
}

func TestDecodeGridDropsUnnamedColumns(t *testing.T) {
	raw := decodeFixture(t, `{
		"table": {
			"columns": [{"name": ""}, {"name": "Employment"}],
			"rows": [[{"displayText": "hidden"}, {"displayValue": 10}]]
		}
	}`)
	got, err := decodeGrid(raw)
	require.NoError(t, err)

	require.Equal(t, []string{"Employment"}, got.Columns)
	require.Equal(t, Row{"Employment": float64(10)}, got.Rows[0])
}

func TestDecodeGridMissingTable(t *testing.T) {
	_, err := decodeGrid(map[string]any{"chart": map[string]any{}})
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecodeMap(t *testing.T) {
	raw := decodeFixture(t, `{
		"map": {
			"map": {
				"titleCaption": "Unemployment Rate",
				"columns": [{"name": ""}, {"name": ""}],
				"rows": [
					[{"code": "37183"}, {"displayValue": 3.1}],
					[{"code": "37063"}, {"displayValue": 3.4}]
				]
			}
		}
	}`)
	got, err := decodeMap(raw)
	require.NoError(t, err)

	require.Equal(t, []string{"RegionFIPS", "Unemployment Rate"}, got.Columns)
	require.Equal(t, "37183", got.Rows[0]["RegionFIPS"])
	require.Equal(t, 3.1, got.Rows[0]["Unemployment Rate"])
}

func TestDecodeMapNestedCells(t *testing.T) {
	raw := decodeFixture(t, `{
		"map": {
			"map": {
				"titleCaption": "GDP",
				"columns": [{"name": ""}, {"name": ""}],
				"rows": [
					[{"code": "37"}, {"total": {"displayValue": 12.5}}]
				]
			}
		}
	}`)
	got, err := decodeMap(raw)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"total": 12.5}, got.Rows[0]["GDP"])
}

func TestDecodeDemographics(t *testing.T) {
	raw := decodeFixture(t, `{
		"table": {
			"sections": [
				{"rows": [
					[{"displayText": "Median Age"}, "38.1%", {"value": 38.1}],
					[{"displayText": "Veterans"}, "7.2%", {"value": 54000}]
				]},
				{"rows": [
					[{"displayText": "Bachelor's"}, "31.0%", {"value": 210000}]
				]}
			]
		}
	}`)
	got, err := decodeDemographics(raw)
	require.NoError(t, err)

	require.Equal(t, []string{"Demographic", "Value", "Percentage"}, got.Columns)
	require.Len(t, got.Rows, 3)
	require.Equal(t, "Median Age", got.Rows[0]["Demographic"])
	require.Equal(t, 38.1, got.Rows[0]["Value"])
	require.Equal(t, "7.2%", got.Rows[1]["Percentage"])
	require.Equal(t, "Bachelor's", got.Rows[2]["Demographic"])
}

func TestDecodeTrendSubtitleHeader(t *testing.T) {
	raw := decodeFixture(t, `{
		"chart": {
			"title": "Employment Trends",
			"subTitle": ["Raleigh, NC "],
			"yAxis": {"title": "Employment"},
			"series": [
				{"data": [[1577836800000, 640100], [1609459200000, 655400]]}
			]
		}
	}`)
	got, err := decodeTrend(raw)
	require.NoError(t, err)

	require.Equal(t, []string{"Date", "Raleigh, NC Employment"}, got.Columns)
	require.Len(t, got.Rows, 2)
	require.EqualValues(t, 1577836800000, got.Rows[0]["Date"])
	require.EqualValues(t, 640100, got.Rows[0]["Raleigh, NC Employment"])
}

func TestDecodeTrendTitleFallback(t *testing.T) {
	raw := decodeFixture(t, `{
		"chart": {
			"title": "Total Wages",
			"series": [{"data": [[1609459200000, 8.1]]}]
		}
	}`)
	got, err := decodeTrend(raw)
	require.NoError(t, err)
	require.Equal(t, []string{"Date", "Total Wages"}, got.Columns)
	require.Equal(t, 8.1, got.Rows[0]["Total Wages"])
}

func TestDecodeDataRows(t *testing.T) {
	raw := decodeFixture(t, `{
		"data": [
			{"title": "Welder", "employer": "Acme", "posted": "2025-07-01"},
			{"title": "Machinist", "employer": "Bolt Co"}
		]
	}`)
	got, err := decodeDataRows(raw)
	require.NoError(t, err)

	require.Equal(t, []string{"employer", "posted", "title"}, got.Columns)
	require.Equal(t, "Welder", got.Rows[0]["title"])
	require.Nil(t, got.Rows[1]["posted"])
}

func TestDecodeTimeSeries(t *testing.T) {
	raw := decodeFixture(t, `{
		"data": [
			{"series": [
				{"date": "2025-07-01", "count": 120},
				{"date": "2025-07-02", "count": 131}
			]}
		]
	}`)
	got, err := decodeTimeSeries(raw)
	require.NoError(t, err)
	require.Equal(t, []string{"count", "date"}, got.Columns)
	require.Len(t, got.Rows, 2)
}

func TestDecodeResumesSkipsUnclassified(t *testing.T) {
	raw := decodeFixture(t, `{
		"tables": [
			{
				"category": "Education",
				"rows": [
					{"label": "Bachelor's", "count": 410, "entryWages": 52000},
					{"label": "Unclassified", "count": 77, "entryWages": 0}
				]
			},
			{
				"category": "Experience",
				"rows": [
					{"label": "5+ years", "count": 212, "entryWages": 61000}
				]
			}
		]
	}`)
	got, err := decodeResumes(raw)
	require.NoError(t, err)

	require.Equal(t, []string{"Category", "Label", "Counts", "Entry Wages"}, got.Columns)
	require.Len(t, got.Rows, 2)
	require.Equal(t, "Education", got.Rows[0]["Category"])
	require.Equal(t, "Bachelor's", got.Rows[0]["Label"])
	require.Equal(t, "Experience", got.Rows[1]["Category"])
}

func TestDecodeCellPriority(t *testing.T) {
	cell, err := decodeCell(map[string]any{
		"displayText":  "shown",
		"displayValue": 4,
		"code":         "x",
	}, false)
	require.NoError(t, err)
	require.Equal(t, "shown", cell)

	cell, err = decodeCell(42, false)
	require.NoError(t, err)
	require.Equal(t, 42, cell)

	_, err = decodeCell(map[string]any{"unexpected": true}, false)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

package jobseq

import (
	"context"
	"net/http"
	"testing"

	"eqlink/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func selectorPayload(t *testing.T, v any) (string, int) {
	t.Helper()
	obj, ok := v.(map[string]any)
	require.True(t, ok, "selector is not an object: %v", v)
	code, _ := obj["code"].(string)
	typ, _ := obj["type"].(float64)
	return code, int(typ)
}

func TestOccupationSnapshotPayload(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, cap := newTestClient(t, respondJSON(gridFixture))

	got, err := client.Core.OccupationSnapshot(ctx, OccupationSnapshotOptions{
		Region: Selector{Code: "37", Type: 2},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Occupation", "Employment"}, got.Columns)

	regions, ok := cap.Payload["regions"].([]any)
	require.True(t, ok)
	require.Len(t, regions, 1)
	code, typ := selectorPayload(t, regions[0])
	require.Equal(t, "37", code)
	require.Equal(t, 2, typ)

	code, _ = selectorPayload(t, cap.Payload["occupation"])
	require.Equal(t, "00-0000", code)
	require.Equal(t, "5", cap.Payload["histYears"])
	require.Equal(t, "1", cap.Payload["projYears"])
	require.Equal(t, "2", cap.Payload["occLevel"])
	require.Equal(t, "10", cap.Payload["ownLevel"])
}

func TestOccupationSnapshotRequiresRegion(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, _ := newTestClient(t, respondJSON(gridFixture))

	_, err := client.Core.OccupationSnapshot(ctx, OccupationSnapshotOptions{})
	var missing *MissingParamError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "region", missing.Param)
	require.EqualError(t, err, "missing required parameter: region")
}

func TestWhatIfNestsPayload(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, cap := newTestClient(t, respondJSON(gridFixture))

	_, err := client.Core.WhatIf(ctx, WhatIfOptions{
		Region: Selector{Code: "37183", Type: 4},
	})
	require.NoError(t, err)

	require.Equal(t, "WhatIf", cap.Payload["mode"])
	inner, ok := cap.Payload["whatIf"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, inner, "regions")
	require.EqualValues(t, 100, inner["firmSize"])
	require.Equal(t, "Expansion", inner["type"])

	code, typ := selectorPayload(t, inner["industry"])
	require.Equal(t, "31", code)
	require.Equal(t, 2, typ)
}

func TestWillingAndAbleRequiresOccupation(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, _ := newTestClient(t, respondJSON(gridFixture))

	_, err := client.Core.WillingAndAble(ctx, WillingAndAbleOptions{
		Region: Selector{Code: "37", Type: 2},
	})
	var missing *MissingParamError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "occupation", missing.Param)
}

func TestJobPostingWagesRequiresWindow(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, _ := newTestClient(t, respondJSON(`{"data": []}`))

	region := Selector{Code: "37", Type: 2}

	_, err := client.RTI.JobPostingWages(ctx, JobPostingWagesOptions{Region: region})
	var missing *MissingParamError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "start", missing.Param)

	_, err = client.RTI.JobPostingWages(ctx, JobPostingWagesOptions{
		Region: region,
		Start:  "2025-01-01",
	})
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "end", missing.Param)

	_, err = client.RTI.JobPostingWages(ctx, JobPostingWagesOptions{
		Region: region,
		Start:  "2025-01-01",
		End:    "2025-06-30",
	})
	require.NoError(t, err)
}

func TestJobPostingsDefaults(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, cap := newTestClient(t, respondJSON(`{"data": []}`))

	_, err := client.RTI.JobPostings(ctx, JobPostingsOptions{
		Region: Selector{Code: "37", Type: 2},
	})
	require.NoError(t, err)

	require.Equal(t, "/api/External/JobPosts", cap.Path)
	require.Equal(t, "Last30Days", cap.Payload["timeframe"])
	require.Equal(t, "New", cap.Payload["postState"])
	require.EqualValues(t, 20, cap.Payload["endRecord"])

	// absent filters still go out as an empty array
	filters, ok := cap.Payload["filters"].([]any)
	require.True(t, ok)
	require.Empty(t, filters)
}

func TestResumesPayloadShape(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, cap := newTestClient(t, respondJSON(`{"tables": []}`))

	_, err := client.RTI.Resumes(ctx, ResumesOptions{
		Region:     Selector{Code: "37", Type: 2},
		EntryWages: true,
	})
	require.NoError(t, err)

	options, ok := cap.Payload["options"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, true, options["entryWages"])
	require.Equal(t, "Annual", options["wageType"])
	require.Contains(t, cap.Payload, "regions")
	require.Contains(t, cap.Payload, "locationMode")
}

func TestDataFetchOccupationPayload(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, cap := newTestClient(t, respondJSON(`{"data": []}`))

	_, err := client.DataFetch.Occupation(ctx, OccupationDataFetchOptions{
		Region:      Selector{Code: "37", Type: 2},
		SubSocLevel: 3,
		Fields: []Field{
			{Name: "Empl", Date: "2025-01-01", Interval: "Quarterly"},
			{Name: "AvgWage"},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "/api/External/Datafetch/Occupation", cap.Path)
	require.EqualValues(t, 1000, cap.Payload["pageSize"])

	fields, ok := cap.Payload["fields"].([]any)
	require.True(t, ok)
	require.Len(t, fields, 2)

	first, ok := fields[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Empl", first["field"])
	points, ok := first["timepoints"].([]any)
	require.True(t, ok)
	require.Len(t, points, 1)

	second, ok := fields[1].(map[string]any)
	require.True(t, ok)
	points, ok = second["timepoints"].([]any)
	require.True(t, ok)
	require.Empty(t, points)
}

func TestDataFetchFieldDropsHalfSetTimePoint(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, cap := newTestClient(t, respondJSON(`{"data": []}`))

	_, err := client.DataFetch.Occupation(ctx, OccupationDataFetchOptions{
		Region: Selector{Code: "37", Type: 2},
		Fields: []Field{
			{Name: "Empl", Date: "2025-01-01"},
			{Name: "AvgWage", Interval: "Quarterly", Offset: 4},
		},
	})
	require.NoError(t, err)

	fields, ok := cap.Payload["fields"].([]any)
	require.True(t, ok)
	require.Len(t, fields, 2)
	for _, raw := range fields {
		field, ok := raw.(map[string]any)
		require.True(t, ok)
		points, ok := field["timepoints"].([]any)
		require.True(t, ok)
		require.Empty(t, points)
	}
}

func TestDataFetchOccupationRequiresFields(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, _ := newTestClient(t, respondJSON(`{"data": []}`))

	_, err := client.DataFetch.Occupation(ctx, OccupationDataFetchOptions{
		Region: Selector{Code: "37", Type: 2},
	})
	var missing *MissingParamError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "fields", missing.Param)
}

func TestEconomicImpactOmitsUnsetEventRegion(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, cap := newTestClient(t, respondJSON(gridFixture))

	_, err := client.Impact.Employment(ctx, EconomicImpactOptions{
		ImpactRegion: Selector{Code: "37", Type: 2},
	})
	require.NoError(t, err)

	require.NotContains(t, cap.Payload, "eventRegion")
	require.Equal(t, "Employment", cap.Payload["eventSizeType"])
	require.Equal(t, "140", cap.Payload["eventSize"])

	_, err = client.Impact.SalesOutput(ctx, EconomicImpactOptions{
		ImpactRegion: Selector{Code: "37", Type: 2},
		EventRegion:  Selector{Code: "37183", Type: 4},
	})
	require.NoError(t, err)
	require.Contains(t, cap.Payload, "eventRegion")
	require.Equal(t, "SaleOutput", cap.Payload["eventSizeType"])
	require.Equal(t, "20", cap.Payload["eventSize"])
}

func TestAwardGapsByProgramDefaults(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, cap := newTestClient(t, respondJSON(gridFixture))

	_, err := client.AwardGaps.ByProgram(ctx, AwardGapsByProgramOptions{
		Region: Selector{Code: "37", Type: 2},
	})
	require.NoError(t, err)

	require.Equal(t, "Program", cap.Payload["dataset"])
	inner, ok := cap.Payload["program"].(map[string]any)
	require.True(t, ok)
	code, _ := selectorPayload(t, inner["cip"])
	require.Equal(t, "00.0000", code)
}

func TestCatalogAvailable(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, cap := newTestClient(t, respondJSON(`[
		{"c": "37", "t": 2, "d": "North Carolina"},
		{"c": "37183", "t": 4, "d": "Wake County, NC"}
	]`))

	got, err := client.Catalog.Available(ctx, "regions", 2)
	require.NoError(t, err)

	require.Equal(t, http.MethodGet, cap.Method)
	require.Equal(t, "/api/External/regions", cap.Path)
	require.Equal(t, "2", cap.Query["type"])

	require.Equal(t, []string{"reg_code", "reg_type", "reg_description"}, got.Columns)
	require.Equal(t, "37", got.Rows[0]["reg_code"])
	require.Equal(t, "Wake County, NC", got.Rows[1]["reg_description"])
}

func TestCatalogAvailableAnalytics(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, _ := newTestClient(t, respondJSON(`[
		{"id": "346c9b58-4636-4b92-9521-be86a0868f76", "name": "Occupation Snapshot"}
	]`))

	got, err := client.Catalog.Available(ctx, "analytics", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name"}, got.Columns)
	require.Equal(t, "Occupation Snapshot", got.Rows[0]["name"])
}

func TestCatalogUnknownCategory(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, _ := newTestClient(t, respondJSON(`[]`))

	_, err := client.Catalog.Available(ctx, "nonsense", 0)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestCatalogAvailableTypes(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, cap := newTestClient(t, respondJSON(`[
		{"id": 2, "name": "State"},
		{"id": 4, "name": "County"}
	]`))

	got, err := client.Catalog.AvailableTypes(ctx, "regions")
	require.NoError(t, err)
	require.Equal(t, "/api/External/regionsTypes", cap.Path)
	require.Equal(t, []string{"region_type_id", "region_type_name"}, got.Columns)
	require.Equal(t, "County", got.Rows[1]["region_type_name"])
}

func TestSchoolsForRegion(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/jobseq")
	defer cleanup()
	ctx := context.Background()

	client, cap := newTestClient(t, respondJSON(`[
		{"ipeds": "199193", "name": "North Carolina State University"}
	]`))

	got, err := client.Catalog.SchoolsForRegion(ctx, Selector{Code: "37", Type: 2})
	require.NoError(t, err)

	require.Equal(t, "/api/External/SchoolsForRegion", cap.Path)
	require.Equal(t, "37", cap.Query["code"])
	require.Equal(t, "2", cap.Query["type"])
	require.Equal(t, []string{"ipeds", "name"}, got.Columns)
}

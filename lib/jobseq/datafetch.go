package jobseq

import "context"

// DataFetchService runs the bulk DataFetch analytics, which return
// raw data rows instead of a rendered report.
type DataFetchService struct {
	client *Client
}

// Field selects one datafetch output column, optionally pinned to
// a time point.
type Field struct {
	Name     string
	Date     string // e.g. "2020-01-01"
	Interval string // e.g. "Quarterly"
	Offset   int
}

func (f Field) payload() map[string]any {
	// the vendor only honors a time point with both date and
	// interval; a half-set pair sends none
	if f.Date == "" || f.Interval == "" {
		return map[string]any{"field": f.Name, "timepoints": []any{}}
	}
	point := map[string]any{"date": f.Date, "interval": f.Interval}
	if f.Offset != 0 {
		point["offset"] = f.Offset
	}
	return map[string]any{"field": f.Name, "timepoints": []any{point}}
}

type OccupationDataFetchOptions struct {
	Region Selector
	// SubRegionLevel expands the region into sub-regions of this
	// type; zero keeps the region itself.
	SubRegionLevel int
	Occupation     Selector
	// SubSocLevel expands the occupation to this SOC digit level.
	SubSocLevel int
	Fields      []Field
	PageKey     int
	PageSize    int
}

// Occupation fetches occupation-level data points for every
// region/occupation combination the options expand to.
func (s *DataFetchService) Occupation(ctx context.Context, opts OccupationDataFetchOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	if len(opts.Fields) == 0 {
		return Table{}, &MissingParamError{Param: "fields"}
	}

	occupation := opts.Occupation.or(anyOccupation)
	fields := make([]any, len(opts.Fields))
	for i, f := range opts.Fields {
		fields[i] = f.payload()
	}

	payload := newBody().
		set("regions", []any{map[string]any{
			"parent": opts.Region,
			"level":  orInt(opts.SubRegionLevel, opts.Region.Type),
		}}).
		set("occupations", []any{map[string]any{
			"parent": occupation,
			"level":  orInt(opts.SubSocLevel, occupation.Type),
		}}).
		set("fields", fields).
		set("pageKey", opts.PageKey).
		set("pageSize", orInt(opts.PageSize, 1000))

	res, err := s.client.RunV2(ctx, "Datafetch/Occupation", payload)
	if err != nil {
		return Table{}, err
	}
	return decodeDataRows(res)
}

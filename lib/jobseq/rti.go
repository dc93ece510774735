package jobseq

import "context"

// RTIService runs the real-time intelligence analytics built on
// job posting and resume data. These are v2 analytics addressed by
// URI segment instead of UUID.
type RTIService struct {
	client *Client
}

type JobPostingsOptions struct {
	Region  Selector
	Filters []Filter
	// Freetext keeps only postings containing this keyword.
	Freetext        string
	Timeframe       string // e.g. "Last30Days", overrides Start/End
	PostState       string // e.g. "New" or "Open"
	Start           string
	End             string
	StartRecord     int
	EndRecord       int
	ExcludeStaffing bool
}

func (s *RTIService) JobPostings(ctx context.Context, opts JobPostingsOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		filters(opts.Filters).
		set("excludeStaffing", opts.ExcludeStaffing).
		set("freetext", opts.Freetext).
		set("timeframe", orString(opts.Timeframe, "Last30Days")).
		set("postState", orString(opts.PostState, "New")).
		set("start", opts.Start).
		set("end", opts.End).
		set("startRecord", opts.StartRecord).
		set("endRecord", orInt(opts.EndRecord, 20))

	res, err := s.client.RunV2(ctx, "JobPosts", payload)
	if err != nil {
		return Table{}, err
	}
	return decodeDataRows(res)
}

type JobPostingsOverTimeOptions struct {
	Region    Selector
	Filters   []Filter
	Freetext  string
	Timeframe string
	PostState string
	Start     string
	End       string
	Interval  string // "Daily", "Monthly" or "Yearly"
	AdType    string
}

func (s *RTIService) JobPostingsOverTime(ctx context.Context, opts JobPostingsOverTimeOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		filters(opts.Filters).
		set("freetext", opts.Freetext).
		set("timeframe", orString(opts.Timeframe, "Last30Days")).
		set("postState", orString(opts.PostState, "New")).
		set("start", opts.Start).
		set("end", opts.End).
		set("interval", orString(opts.Interval, "Daily")).
		set("adType", orString(opts.AdType, "All"))

	res, err := s.client.RunV2(ctx, "RealTimeIntelligenceOverTime", payload)
	if err != nil {
		return Table{}, err
	}
	return decodeTimeSeries(res)
}

type JobPostingWagesOptions struct {
	Region    Selector
	Filters   []Filter
	PostState string
	// Start and End are required, the wages analytic does not
	// accept an open-ended timeframe.
	Start string
	End   string
}

func (s *RTIService) JobPostingWages(ctx context.Context, opts JobPostingWagesOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	if opts.Start == "" {
		return Table{}, &MissingParamError{Param: "start"}
	}
	if opts.End == "" {
		return Table{}, &MissingParamError{Param: "end"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		filters(opts.Filters).
		set("postState", orString(opts.PostState, "New")).
		set("start", opts.Start).
		set("end", opts.End)

	res, err := s.client.RunV2(ctx, "RealTimeIntelligenceWages", payload)
	if err != nil {
		return Table{}, err
	}
	return decodeDataRows(res)
}

type ResumesOptions struct {
	Region  Selector
	Filters []Filter
	// LocationMode is a bitmask: 1 = lives in region, 2 = works
	// in region, 4 = attended school in region.
	LocationMode     int
	Freetext         string
	IncludeSummary   bool
	EntryWages       bool
	ExperiencedWages bool
	WageType         string
}

// Resumes runs resume forensics over the region's resume corpus.
func (s *RTIService) Resumes(ctx context.Context, opts ResumesOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		set("entryWages", opts.EntryWages).
		set("experiencedWages", opts.ExperiencedWages).
		set("wageType", orString(opts.WageType, "Annual")).
		nest("options").
		selectorList("regions", opts.Region).
		filters(opts.Filters).
		set("includeSummary", opts.IncludeSummary).
		set("freetext", opts.Freetext).
		set("locationMode", opts.LocationMode)

	res, err := s.client.RunV2(ctx, "Resumes", payload)
	if err != nil {
		return Table{}, err
	}
	return decodeResumes(res)
}

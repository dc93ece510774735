package jobseq

import (
	"context"

	"github.com/google/uuid"
)

// MapService runs the choropleth map analytics. All of them share
// one endpoint and return the map grid, normalized into a table
// keyed by RegionFIPS.
type MapService struct {
	client *Client
}

var mapsID = uuid.MustParse("434d0060-62a0-4164-916c-c1a78e44c827")

func (s *MapService) run(ctx context.Context, payload any) (Table, error) {
	res, err := s.client.RunAnalytic(ctx, mapsID, payload)
	if err != nil {
		return Table{}, err
	}
	return decodeMap(res)
}

// finishMap appends the outer map envelope shared by every map
// analytic: the region filter, the map type tag and the region
// granularity of the output.
func finishMap(inner body, filter Selector, mapType, regionLevel string) body {
	return inner.
		selector("regionFilter", filter).
		set("type", mapType).
		set("regionLevel", orString(regionLevel, "1"))
}

type AwardsMapOptions struct {
	RegionFilter         Selector
	CipSoc               Selector
	AwardLevel           string
	ExcludeOnlineSchools bool
	NcesYear             string
	RegionLevel          string
}

func (s *MapService) Awards(ctx context.Context, opts AwardsMapOptions) (Table, error) {
	if opts.RegionFilter.isZero() {
		return Table{}, &MissingParamError{Param: "regionFilter"}
	}
	inner := newBody().
		selector("cipSoc", opts.CipSoc.or(Selector{Code: "00.0000", Type: 150})).
		set("awardLevel", orString(opts.AwardLevel, "0")).
		set("excludeOnlineSchools", opts.ExcludeOnlineSchools).
		set("ncesYear", orString(opts.NcesYear, "2021")).
		nest("awardsMap")
	return s.run(ctx, finishMap(inner, opts.RegionFilter, "awards", opts.RegionLevel))
}

type CommuteMapOptions struct {
	Region       Selector
	RegionFilter Selector
	Occupation   Selector
	// CommuteDirection is "ToRegion" or "FromRegion".
	CommuteDirection string
	RegionLevel      string
}

func (s *MapService) Commute(ctx context.Context, opts CommuteMapOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	if opts.RegionFilter.isZero() {
		return Table{}, &MissingParamError{Param: "regionFilter"}
	}
	inner := newBody().
		selector("region", opts.Region).
		selector("occupation", opts.Occupation.or(anyOccupation)).
		set("commuteDirection", orString(opts.CommuteDirection, "ToRegion")).
		nest("commuteMap")
	return s.run(ctx, finishMap(inner, opts.RegionFilter, "commute", opts.RegionLevel))
}

type DemographicsMapOptions struct {
	RegionFilter Selector
	DemoVariable string
	ShowValueAs  string
	RegionLevel  string
}

func (s *MapService) Demographics(ctx context.Context, opts DemographicsMapOptions) (Table, error) {
	if opts.RegionFilter.isZero() {
		return Table{}, &MissingParamError{Param: "regionFilter"}
	}
	inner := newBody().
		set("demoVariable", orString(opts.DemoVariable, "3")).
		set("showValueAs", orString(opts.ShowValueAs, "Percentages")).
		nest("demographicsMap")
	return s.run(ctx, finishMap(inner, opts.RegionFilter, "demographic", opts.RegionLevel))
}

type EmploymentMapOptions struct {
	RegionFilter   Selector
	EmplChangeType string
	RegionLevel    string
}

func (s *MapService) Employment(ctx context.Context, opts EmploymentMapOptions) (Table, error) {
	if opts.RegionFilter.isZero() {
		return Table{}, &MissingParamError{Param: "regionFilter"}
	}
	inner := newBody().
		set("emplChangeType", orString(opts.EmplChangeType, "LastYear")).
		nest("employmentMap")
	return s.run(ctx, finishMap(inner, opts.RegionFilter, "empl", opts.RegionLevel))
}

type GdpMapOptions struct {
	RegionFilter Selector
	GdpYear      string
	RegionLevel  string
}

func (s *MapService) Gdp(ctx context.Context, opts GdpMapOptions) (Table, error) {
	if opts.RegionFilter.isZero() {
		return Table{}, &MissingParamError{Param: "regionFilter"}
	}
	inner := newBody().
		set("gdpYear", orString(opts.GdpYear, "2021")).
		nest("gdpMap")
	return s.run(ctx, finishMap(inner, opts.RegionFilter, "gdp", opts.RegionLevel))
}

type IndustryMapOptions struct {
	RegionFilter Selector
	Industry     Selector
	// Measure picks what the map colors encode, e.g. "Empl".
	Measure     string
	RegionLevel string
}

func (s *MapService) Industry(ctx context.Context, opts IndustryMapOptions) (Table, error) {
	if opts.RegionFilter.isZero() {
		return Table{}, &MissingParamError{Param: "regionFilter"}
	}
	inner := newBody().
		selector("industry", opts.Industry.or(Selector{Code: "31", Type: 2})).
		set("type", orString(opts.Measure, "Empl")).
		nest("industryMap")
	return s.run(ctx, finishMap(inner, opts.RegionFilter, "industry", opts.RegionLevel))
}

type OccupationMapOptions struct {
	RegionFilter         Selector
	Occupation           Selector
	OccConcentrationType string
	RegionLevel          string
}

func (s *MapService) Occupation(ctx context.Context, opts OccupationMapOptions) (Table, error) {
	if opts.RegionFilter.isZero() {
		return Table{}, &MissingParamError{Param: "regionFilter"}
	}
	inner := newBody().
		selector("occupation", opts.Occupation.or(anyOccupation)).
		set("occConcentrationType", orString(opts.OccConcentrationType, "EmployedWork")).
		nest("occMap")
	return s.run(ctx, finishMap(inner, opts.RegionFilter, "occ", opts.RegionLevel))
}

type RtiMapOptions struct {
	RegionFilter Selector
	Occupation   Selector
	RegionLevel  string
}

func (s *MapService) Rti(ctx context.Context, opts RtiMapOptions) (Table, error) {
	if opts.RegionFilter.isZero() {
		return Table{}, &MissingParamError{Param: "regionFilter"}
	}
	inner := newBody().
		selector("rtiOccupation", opts.Occupation.or(anyOccupation)).
		nest("rtiMap")
	return s.run(ctx, finishMap(inner, opts.RegionFilter, "rti", opts.RegionLevel))
}

type PlainMapOptions struct {
	RegionFilter Selector
	RegionLevel  string
}

func (s *MapService) plain(ctx context.Context, opts PlainMapOptions, mapType string) (Table, error) {
	if opts.RegionFilter.isZero() {
		return Table{}, &MissingParamError{Param: "regionFilter"}
	}
	return s.run(ctx, finishMap(newBody(), opts.RegionFilter, mapType, opts.RegionLevel))
}

func (s *MapService) Rural(ctx context.Context, opts PlainMapOptions) (Table, error) {
	return s.plain(ctx, opts, "rural")
}

func (s *MapService) Underemployment(ctx context.Context, opts PlainMapOptions) (Table, error) {
	return s.plain(ctx, opts, "underempl")
}

func (s *MapService) Unemployment(ctx context.Context, opts PlainMapOptions) (Table, error) {
	return s.plain(ctx, opts, "unempl")
}

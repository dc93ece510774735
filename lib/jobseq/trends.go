package jobseq

import (
	"context"

	"github.com/google/uuid"
)

// TrendService runs the labor and wage trend analytics. They all
// share one endpoint, each method selects its dataset behind it.
// Most return a two-column (Date, value) table decoded from the
// vendor's chart payload with dates as epoch milliseconds.
type TrendService struct {
	client *Client
}

var trendsID = uuid.MustParse("be01565c-5935-42a6-b89a-dccc511935d3")

type TrendOptions struct {
	Region   Selector
	Industry Selector
	OwnLevel string
	// YoYChange reports year-over-year deltas instead of levels.
	YoYChange bool
}

func defaultTrendIndustry(s Selector) Selector {
	return s.or(Selector{Code: "31", Type: 2})
}

func (s *TrendService) runTrend(ctx context.Context, payload any) (Table, error) {
	res, err := s.client.RunAnalytic(ctx, trendsID, payload)
	if err != nil {
		return Table{}, err
	}
	return decodeTrend(res)
}

func (s *TrendService) Employment(ctx context.Context, opts TrendOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		selector("industry", defaultTrendIndustry(opts.Industry)).
		set("ownLevel", orString(opts.OwnLevel, "10")).
		set("yoyChange", opts.YoYChange).
		nest("employment").
		set("dataset", "Employment").
		set("datasetKey", "employment")
	return s.runTrend(ctx, payload)
}

type TotalWagesOptions struct {
	Region             Selector
	Industry           Selector
	OwnLevel           string
	SeasonallyAdjusted bool
}

func (s *TrendService) TotalWages(ctx context.Context, opts TotalWagesOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("industry", defaultTrendIndustry(opts.Industry)).
		set("ownLevel", orString(opts.OwnLevel, "10")).
		set("seasonallyAdjusted", opts.SeasonallyAdjusted).
		nest("totalWages").
		set("dataset", "TotalWages").
		set("datasetKey", "totalWages")
	return s.runTrend(ctx, payload)
}

// CostOfLiving is the one trend analytic that answers with a grid
// instead of a chart.
func (s *TrendService) CostOfLiving(ctx context.Context, opts TrendOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		selector("industry", defaultTrendIndustry(opts.Industry)).
		set("ownLevel", orString(opts.OwnLevel, "10")).
		set("yoyChange", opts.YoYChange).
		nest("averageWages").
		set("dataset", "AvgWages").
		set("datasetKey", "averageWages")

	res, err := s.client.RunAnalytic(ctx, trendsID, payload)
	if err != nil {
		return Table{}, err
	}
	return decodeGrid(res)
}

func (s *TrendService) AverageWages(ctx context.Context, opts TrendOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		selector("industry", defaultTrendIndustry(opts.Industry)).
		set("ownLevel", orString(opts.OwnLevel, "10")).
		set("yoyChange", opts.YoYChange).
		nest("averageWages").
		set("dataset", "AvgWages").
		set("datasetKey", "averageWages")
	return s.runTrend(ctx, payload)
}

type UnemploymentRateOptions struct {
	Region             Selector
	Industry           Selector
	SeasonallyAdjusted bool
}

func (s *TrendService) UnemploymentRate(ctx context.Context, opts UnemploymentRateOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		selector("industry", defaultTrendIndustry(opts.Industry)).
		set("seasonallyAdjusted", opts.SeasonallyAdjusted).
		nest("unemployment").
		set("dataset", "Unemployment").
		set("datasetKey", "unemployment")
	return s.runTrend(ctx, payload)
}

func (s *TrendService) Establishments(ctx context.Context, opts TrendOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		selector("industry", defaultTrendIndustry(opts.Industry)).
		set("ownLevel", orString(opts.OwnLevel, "10")).
		set("yoyChange", opts.YoYChange).
		nest("establishments").
		set("dataset", "Establishments").
		set("datasetKey", "establishments")
	return s.runTrend(ctx, payload)
}

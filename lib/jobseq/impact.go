package jobseq

import (
	"context"

	"github.com/google/uuid"
)

// ImpactService runs the economic impact analytics.
type ImpactService struct {
	client *Client
}

var economicImpactID = uuid.MustParse("58a2d8fc-bb40-4e4d-b78e-f719fa1a361e")

type EconomicImpactOptions struct {
	// ImpactRegion is the region whose economy absorbs the event.
	ImpactRegion Selector
	// EventRegion optionally places the event itself elsewhere.
	EventRegion Selector
	Industry    Selector
	// EventSize is the magnitude of the event, jobs or dollars
	// depending on the analytic.
	EventSize string
}

func (s *ImpactService) run(ctx context.Context, opts EconomicImpactOptions, sizeType, defaultSize string) (Table, error) {
	if opts.ImpactRegion.isZero() {
		return Table{}, &MissingParamError{Param: "impactRegion"}
	}
	payload := newBody().
		selector("impactRegion", opts.ImpactRegion).
		selector("industry", opts.Industry.or(Selector{Code: "31", Type: 2})).
		set("eventSize", orString(opts.EventSize, defaultSize)).
		set("eventSizeType", sizeType)
	if !opts.EventRegion.isZero() {
		payload.selector("eventRegion", opts.EventRegion)
	}

	res, err := s.client.RunAnalytic(ctx, economicImpactID, payload)
	if err != nil {
		return Table{}, err
	}
	return decodeGrid(res)
}

// Employment models the impact of an employment event of EventSize
// jobs.
func (s *ImpactService) Employment(ctx context.Context, opts EconomicImpactOptions) (Table, error) {
	return s.run(ctx, opts, "Employment", "140")
}

// SalesOutput models the impact of a sales/output event of
// EventSize million dollars.
func (s *ImpactService) SalesOutput(ctx context.Context, opts EconomicImpactOptions) (Table, error) {
	return s.run(ctx, opts, "SaleOutput", "20")
}

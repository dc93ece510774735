package jobseq

import (
	"context"

	"github.com/google/uuid"
)

// DemographicService runs the demographic profile analytics.
type DemographicService struct {
	client *Client
}

var demographicProfileID = uuid.MustParse("98529f7c-deb9-421f-9ab2-9fa910d2dffc")

type DemographicProfileOptions struct {
	Region    Selector
	TableType string
}

// Current returns the current demographic summary of a region as a
// (Demographic, Value, Percentage) table.
func (s *DemographicService) Current(ctx context.Context, opts DemographicProfileOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		set("tableType", orString(opts.TableType, "Summary")).
		set("mode", "Current")

	res, err := s.client.RunAnalytic(ctx, demographicProfileID, payload)
	if err != nil {
		return Table{}, err
	}
	return decodeDemographics(res)
}

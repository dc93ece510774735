package jobseq

import (
	"context"

	"github.com/google/uuid"
)

// MixService runs the industry/occupation mix analytics, both of
// which share one endpoint and discriminate by query type.
type MixService struct {
	client *Client
}

var mixID = uuid.MustParse("fa6e2fbe-0f68-498e-80a6-55a6c1b020cd")

type OccupationMixOptions struct {
	Region     Selector
	Occupation Selector
	Years      string
	Model      int
}

// OccupationMix lists the industries a given occupation works in.
func (s *MixService) OccupationMix(ctx context.Context, opts OccupationMixOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	if opts.Occupation.isZero() {
		return Table{}, &MissingParamError{Param: "occupation"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("occupation", opts.Occupation).
		set("years", orString(opts.Years, "10")).
		set("model", opts.Model).
		nest("indDist").
		set("queryType", "IndDist").
		set("datasetKey", "OccDist")

	res, err := s.client.RunAnalytic(ctx, mixID, payload)
	if err != nil {
		return Table{}, err
	}
	return decodeGrid(res)
}

type IndustryMixOptions struct {
	Region   Selector
	Industry Selector
	OccLevel string
	Years    string
	Model    int
}

// IndustryMix lists the occupations a given industry employs.
func (s *MixService) IndustryMix(ctx context.Context, opts IndustryMixOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	if opts.Industry.isZero() {
		return Table{}, &MissingParamError{Param: "industry"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("industry", opts.Industry).
		set("years", orString(opts.Years, "10")).
		set("model", opts.Model).
		set("occLevel", orString(opts.OccLevel, "7")).
		nest("occDist").
		set("queryType", "OccDist").
		set("datasetKey", "OccDist")

	res, err := s.client.RunAnalytic(ctx, mixID, payload)
	if err != nil {
		return Table{}, err
	}
	return decodeGrid(res)
}

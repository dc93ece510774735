package jobseq

import (
	"context"

	"github.com/google/uuid"
)

// AwardGapService runs the award gap analytics, comparing degree
// production against occupational demand.
type AwardGapService struct {
	client *Client
}

var awardGapsID = uuid.MustParse("ae95e9c6-de90-492c-a7e3-d07e8ea89d2b")

type AwardGapsByProgramOptions struct {
	Region Selector
	// Cip selects the instructional program.
	Cip Selector
}

func (s *AwardGapService) ByProgram(ctx context.Context, opts AwardGapsByProgramOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("cip", opts.Cip.or(Selector{Code: "00.0000"})).
		nest("program").
		set("dataset", "Program").
		set("datasetKey", "program")

	res, err := s.client.RunAnalytic(ctx, awardGapsID, payload)
	if err != nil {
		return Table{}, err
	}
	return decodeGrid(res)
}

type AwardGapsByOccupationOptions struct {
	Region     Selector
	Occupation Selector
	SocLevel   string
}

func (s *AwardGapService) ByOccupation(ctx context.Context, opts AwardGapsByOccupationOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("occupation", opts.Occupation.or(anyOccupation)).
		set("socLevel", orString(opts.SocLevel, "7")).
		nest("occupation").
		set("dataset", "Occupation").
		set("datasetKey", "occupation")

	res, err := s.client.RunAnalytic(ctx, awardGapsID, payload)
	if err != nil {
		return Table{}, err
	}
	return decodeGrid(res)
}

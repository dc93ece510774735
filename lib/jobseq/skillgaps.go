package jobseq

import (
	"context"

	"github.com/google/uuid"
)

// SkillGapService runs the skill gap analytics, one shared
// endpoint with three views over it.
type SkillGapService struct {
	client *Client
}

var skillGapsID = uuid.MustParse("148c7d96-36e5-446d-a9b8-f4078bd19d74")

// defaultSkill is the vendor's sample skill used when none is
// given.
var defaultSkill = Selector{Code: "4242", Type: 67}

func (s *SkillGapService) run(ctx context.Context, payload any) (Table, error) {
	res, err := s.client.RunAnalytic(ctx, skillGapsID, payload)
	if err != nil {
		return Table{}, err
	}
	return decodeGrid(res)
}

type SkillGapsBySkillOptions struct {
	Region     Selector
	Occupation Selector
	// Filter narrows the skill class, e.g. "Hard" or "Soft".
	Filter string
}

func (s *SkillGapService) BySkill(ctx context.Context, opts SkillGapsBySkillOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("occupation", opts.Occupation.or(anyOccupation)).
		set("filter", orString(opts.Filter, "Hard")).
		set("displayType", "Table").
		nest("bySkill").
		set("gapType", "BySkill").
		set("datasetKey", "BySkill")
	return s.run(ctx, payload)
}

type SkillGapsByOccupationOptions struct {
	Region     Selector
	Occupation Selector
	Skill      Selector
	OccLevel   string
}

func (s *SkillGapService) ByOccupation(ctx context.Context, opts SkillGapsByOccupationOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("occupation", opts.Occupation.or(anyOccupation)).
		selector("skill", opts.Skill.or(defaultSkill)).
		set("occLevel", orString(opts.OccLevel, "7")).
		set("displayType", "Table").
		nest("byOccupation").
		set("gapType", "ByOccupation").
		set("datasetKey", "BySkill")
	return s.run(ctx, payload)
}

type SkillGapsByRegionOptions struct {
	Region      Selector
	Occupation  Selector
	Skill       Selector
	DisplayType string
}

func (s *SkillGapService) ByRegion(ctx context.Context, opts SkillGapsByRegionOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		selector("skill", opts.Skill.or(defaultSkill)).
		selector("occupation", opts.Occupation.or(anyOccupation)).
		set("displayType", orString(opts.DisplayType, "Table")).
		nest("supply").
		set("gapType", "Supply").
		set("datasetKey", "BySkill")
	return s.run(ctx, payload)
}

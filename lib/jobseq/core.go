package jobseq

import (
	"context"

	"github.com/google/uuid"
)

// CoreService runs the standard analytics: snapshots, gaps,
// diversity, awards and related single-grid reports.
//
// Each analytic is pinned to the endpoint UUID the vendor assigned
// it, and each declares its result shape statically through its
// return type: Table for tabular analytics, map[string]any for
// scalar ones.
type CoreService struct {
	client *Client
}

var (
	occupationSnapshotID  = uuid.MustParse("346c9b58-4636-4b92-9521-be86a0868f76")
	occupationWagesID     = uuid.MustParse("070d4e17-cf3a-4d52-8071-48be8bea4325")
	occupationGapsID      = uuid.MustParse("f0b719b4-308b-4c5c-b689-baa6b909d5f3")
	industrySnapshotID    = uuid.MustParse("9d7913e1-8395-48ec-98b6-a5476cc9c2f3")
	whatIfID              = uuid.MustParse("8d554e48-8940-4d0f-958b-067c462340ca")
	shiftShareID          = uuid.MustParse("9dfd4380-fe28-458f-9dcf-d2f1c4750358")
	industryDiversityID   = uuid.MustParse("4c03b549-365e-487f-941f-ccde3df884a3")
	occupationDiversityID = uuid.MustParse("7993e1f6-b66f-4a15-a876-3d93731affa8")
	awardsID              = uuid.MustParse("feea06ae-4562-470b-afee-acc328f991ec")
	willingAndAbleID      = uuid.MustParse("b71bc7d7-18c4-4c03-b4a0-fccbe9c5cd64")
	jobAndTalentLocatorID = uuid.MustParse("a3c057c9-49e2-4876-84c2-a198b3f84198")
	militaryExitsID       = uuid.MustParse("960cf539-83f8-42a5-b640-886806c90e08")
)

// anyOccupation matches every SOC code.
var anyOccupation = Selector{Code: "00-0000"}

// anyIndustry matches every NAICS code.
var anyIndustry = Selector{Code: "0"}

func (s *CoreService) run(ctx context.Context, id uuid.UUID, payload any) (Table, error) {
	res, err := s.client.RunAnalytic(ctx, id, payload)
	if err != nil {
		return Table{}, err
	}
	return decodeGrid(res)
}

type OccupationSnapshotOptions struct {
	Region        Selector
	Occupation    Selector // defaults to all occupations
	OccLevel      string   // SOC digit level of the output rows
	HistYears     string
	ProjYears     string
	Model         int
	OwnLevel      string // ownership class, e.g. "10" = private
	ExcludePrelim bool
}

func (s *CoreService) OccupationSnapshot(ctx context.Context, opts OccupationSnapshotOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		selector("occupation", opts.Occupation.or(anyOccupation)).
		set("histYears", orString(opts.HistYears, "5")).
		set("projYears", orString(opts.ProjYears, "1")).
		set("occLevel", orString(opts.OccLevel, "2")).
		set("model", opts.Model).
		set("ownLevel", orString(opts.OwnLevel, "10")).
		set("excludePrelim", opts.ExcludePrelim)
	return s.run(ctx, occupationSnapshotID, payload)
}

type OccupationWagesOptions struct {
	Region     Selector
	Occupation Selector
	OccLevel   string
	Hourly     bool
}

func (s *CoreService) OccupationWages(ctx context.Context, opts OccupationWagesOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		selector("occupation", opts.Occupation.or(anyOccupation)).
		set("occLevel", orString(opts.OccLevel, "2")).
		set("hourly", opts.Hourly)
	return s.run(ctx, occupationWagesID, payload)
}

type OccupationGapsOptions struct {
	Region     Selector
	Occupation Selector
	SocLevel   string
	Years      string
	// KnowledgeOnly restricts gaps to knowledge-based occupations.
	KnowledgeOnly bool
	ShowMore      bool
}

func (s *CoreService) OccupationGaps(ctx context.Context, opts OccupationGapsOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("occupation", opts.Occupation.or(anyOccupation)).
		set("socLevel", orString(opts.SocLevel, "2")).
		set("years", orString(opts.Years, "10")).
		set("knowledgeOnly", opts.KnowledgeOnly).
		set("tableShowMore", opts.ShowMore).
		set("displayType", "Table")
	return s.run(ctx, occupationGapsID, payload)
}

type IndustrySnapshotOptions struct {
	Region    Selector
	Industry  Selector
	HistYears int
	ProjYears int
	IndLevel  string
	Model     int
}

func (s *CoreService) IndustrySnapshot(ctx context.Context, opts IndustrySnapshotOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		selector("industry", opts.Industry.or(anyIndustry)).
		set("histYears", orInt(opts.HistYears, 5)).
		set("projYears", orInt(opts.ProjYears, 1)).
		set("indLevel", orString(opts.IndLevel, "2")).
		set("model", opts.Model)
	return s.run(ctx, industrySnapshotID, payload)
}

type WhatIfOptions struct {
	Region   Selector
	Industry Selector
	FirmSize int
	// Event is "Expansion" or "Contraction".
	Event string
}

// WhatIf models the regional impact of a hypothetical firm
// expansion or contraction.
func (s *CoreService) WhatIf(ctx context.Context, opts WhatIfOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selectorList("regions", opts.Region).
		selector("industry", opts.Industry.or(Selector{Code: "31", Type: 2})).
		set("firmSize", orInt(opts.FirmSize, 100)).
		set("type", orString(opts.Event, "Expansion")).
		nest("whatIf").
		set("mode", "WhatIf")
	return s.run(ctx, whatIfID, payload)
}

type ShiftShareOptions struct {
	Region   Selector
	Industry Selector
	Years    string
	OwnLevel string
}

func (s *CoreService) ShiftShare(ctx context.Context, opts ShiftShareOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("industry", opts.Industry.or(Selector{Code: "31", Type: 2})).
		set("years", orString(opts.Years, "10")).
		set("ownLevel", orString(opts.OwnLevel, "10"))
	return s.run(ctx, shiftShareID, payload)
}

type IndustryDiversityOptions struct {
	Region         Selector
	Industry       Selector
	NaicsLevel     string
	Demographic    string
	SubDemographic string
}

func (s *CoreService) IndustryDiversity(ctx context.Context, opts IndustryDiversityOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("industry", opts.Industry.or(anyIndustry)).
		set("naicsLevel", orString(opts.NaicsLevel, "0")).
		set("demo1", orString(opts.Demographic, "L")).
		set("demo2", orString(opts.SubDemographic, "L"))
	return s.run(ctx, industryDiversityID, payload)
}

type OccupationDiversityOptions struct {
	Region     Selector
	Occupation Selector
	Category   string
	OccLevel   string
}

func (s *CoreService) OccupationDiversity(ctx context.Context, opts OccupationDiversityOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("occupation", opts.Occupation.or(anyOccupation)).
		set("category", orString(opts.Category, "A")).
		set("displayMode", "Table").
		set("occLevel", orString(opts.OccLevel, "6"))
	return s.run(ctx, occupationDiversityID, payload)
}

type AwardsOptions struct {
	Region     Selector
	Occupation Selector
	// School is the IPEDS code of a single institution.
	School       string
	Model        int
	ShowDetailed bool
}

func (s *CoreService) Awards(ctx context.Context, opts AwardsOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("occupation", opts.Occupation.or(anyOccupation)).
		set("school", opts.School).
		set("model", opts.Model).
		set("showDetailed", opts.ShowDetailed)
	return s.run(ctx, awardsID, payload)
}

type WillingAndAbleOptions struct {
	Region       Selector
	Occupation   Selector
	EmployerMode bool
}

func (s *CoreService) WillingAndAble(ctx context.Context, opts WillingAndAbleOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	if opts.Occupation.isZero() {
		return Table{}, &MissingParamError{Param: "occupation"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("occupation", opts.Occupation).
		set("employermode", opts.EmployerMode).
		set("mode", "Table").
		nest("WillingAndAble").
		set("type", "WillingAndAble")
	return s.run(ctx, willingAndAbleID, payload)
}

type JobAndTalentLocatorOptions struct {
	Occupation Selector
}

func (s *CoreService) JobAndTalentLocator(ctx context.Context, opts JobAndTalentLocatorOptions) (Table, error) {
	if opts.Occupation.isZero() {
		return Table{}, &MissingParamError{Param: "occupation"}
	}
	payload := newBody().selector("occupation", opts.Occupation)
	return s.run(ctx, jobAndTalentLocatorID, payload)
}

type MilitaryExitsOptions struct {
	Region Selector
}

func (s *CoreService) MilitaryExits(ctx context.Context, opts MilitaryExitsOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().selector("region", opts.Region)
	return s.run(ctx, militaryExitsID, payload)
}

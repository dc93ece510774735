package jobseq

import (
	"context"

	"github.com/google/uuid"
)

// SupplyChainService runs the supplier/buyer/gap analytics.
type SupplyChainService struct {
	client *Client
}

var supplyChainID = uuid.MustParse("d2adef1d-7f93-48dc-8b33-7084c117db7b")

type SupplyChainOptions struct {
	Region   Selector
	Industry Selector
	IndLevel string
}

func (s *SupplyChainService) run(ctx context.Context, payload any) (Table, error) {
	res, err := s.client.RunAnalytic(ctx, supplyChainID, payload)
	if err != nil {
		return Table{}, err
	}
	return decodeGrid(res)
}

// Suppliers lists the industries a given industry buys from.
func (s *SupplyChainService) Suppliers(ctx context.Context, opts SupplyChainOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("industry", opts.Industry.or(Selector{Code: "31", Type: 2})).
		set("indLevel", orString(opts.IndLevel, "6")).
		nest("supplier").
		set("dataset", "Suppliers").
		set("datasetKey", "supplier")
	return s.run(ctx, payload)
}

// Buyers lists the industries a given industry sells to.
func (s *SupplyChainService) Buyers(ctx context.Context, opts SupplyChainOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		selector("industry", opts.Industry.or(Selector{Code: "31", Type: 2})).
		set("indLevel", orString(opts.IndLevel, "6")).
		nest("buyer").
		set("dataset", "Buyers").
		set("datasetKey", "buyer")
	return s.run(ctx, payload)
}

type SupplyChainGapsOptions struct {
	Region   Selector
	IndLevel string
	DispType string
}

// Gaps surfaces demand a region's suppliers cannot satisfy.
func (s *SupplyChainService) Gaps(ctx context.Context, opts SupplyChainGapsOptions) (Table, error) {
	if opts.Region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	payload := newBody().
		selector("region", opts.Region).
		set("indLevel", orString(opts.IndLevel, "6")).
		set("dispType", orString(opts.DispType, "All")).
		nest("gap").
		set("dataset", "Gaps").
		set("datasetKey", "gap")
	return s.run(ctx, payload)
}

package jobseq

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// CatalogService lists the codes the other analytics accept:
// regions, occupations, industries, programs, demographics and the
// analytics themselves.
type CatalogService struct {
	client *Client
}

// Available returns the catalog of one category, e.g. "regions",
// "occupations", "industries", "cips", "demographics" or
// "analytics". typeFilter narrows to one code type; zero means all.
//
// Column names are prefixed with the category's three-letter stem,
// matching the vendor's own export convention.
func (s *CatalogService) Available(ctx context.Context, category string, typeFilter int) (Table, error) {
	if category == "" {
		return Table{}, &MissingParamError{Param: "category"}
	}
	query := url.Values{}
	if typeFilter != 0 {
		query.Set("type", strconv.Itoa(typeFilter))
	}
	items, err := s.client.getList(ctx, "/api/External/"+category, query)
	if err != nil {
		return Table{}, err
	}

	prefix := category
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	var columns []string
	switch prefix {
	case "reg", "occ", "ind":
		columns = []string{prefix + "_code", prefix + "_type", prefix + "_description"}
	case "cip", "dem":
		columns = []string{prefix + "_code", prefix + "_description"}
	case "ana":
		columns = []string{"id", "name"}
	default:
		return Table{}, &DecodeError{Detail: "unknown catalog category: " + category}
	}

	rows := make([]Row, 0, len(items))
	for i, item := range items {
		entry, err := asMap(item, "catalog entry "+strconv.Itoa(i))
		if err != nil {
			return Table{}, err
		}
		switch prefix {
		case "reg", "occ", "ind":
			rows = append(rows, Row{
				columns[0]: entry["c"],
				columns[1]: entry["t"],
				columns[2]: entry["d"],
			})
		case "cip", "dem":
			rows = append(rows, Row{
				columns[0]: entry["c"],
				columns[1]: entry["d"],
			})
		case "ana":
			rows = append(rows, Row{
				"id":   entry["id"],
				"name": entry["name"],
			})
		}
	}
	return Table{Columns: columns, Rows: rows}, nil
}

// AvailableTypes returns the code types of one category, e.g. the
// region types (nation, state, county, ...) for "regions".
func (s *CatalogService) AvailableTypes(ctx context.Context, category string) (Table, error) {
	if category == "" {
		return Table{}, &MissingParamError{Param: "category"}
	}
	target := category + "Types"
	items, err := s.client.getList(ctx, "/api/External/"+target, nil)
	if err != nil {
		return Table{}, err
	}

	stem := strings.TrimSuffix(category, "s")
	columns := []string{stem + "_type_id", stem + "_type_name"}
	rows := make([]Row, 0, len(items))
	for i, item := range items {
		entry, err := asMap(item, "type entry "+strconv.Itoa(i))
		if err != nil {
			return Table{}, err
		}
		rows = append(rows, Row{
			columns[0]: entry["id"],
			columns[1]: entry["name"],
		})
	}
	return Table{Columns: columns, Rows: rows}, nil
}

// SchoolsForRegion lists the schools the awards analytics know
// about inside a region.
func (s *CatalogService) SchoolsForRegion(ctx context.Context, region Selector) (Table, error) {
	if region.isZero() {
		return Table{}, &MissingParamError{Param: "region"}
	}
	query := url.Values{}
	query.Set("code", region.Code)
	query.Set("type", strconv.Itoa(region.Type))
	items, err := s.client.getList(ctx, "/api/External/SchoolsForRegion", query)
	if err != nil {
		return Table{}, err
	}

	entries := make([]map[string]any, 0, len(items))
	for i, item := range items {
		entry, err := asMap(item, "school entry "+strconv.Itoa(i))
		if err != nil {
			return Table{}, err
		}
		entries = append(entries, entry)
	}
	return Tabulate(entries), nil
}

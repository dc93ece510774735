package jobseq

import "fmt"

// The vendor returns a different JSON layout per analytic family.
// Each decoder below flattens one of those layouts into a Table.
// Which decoder applies to which analytic is a static property of
// the analytic, never inferred from the response at runtime.

func asMap(v any, path string) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &DecodeError{Detail: fmt.Sprintf("%s is not an object", path)}
	}
	return m, nil
}

func asSlice(v any, path string) ([]any, error) {
	s, ok := v.([]any)
	if !ok {
		return nil, &DecodeError{Detail: fmt.Sprintf("%s is not an array", path)}
	}
	return s, nil
}

func dig(raw map[string]any, path ...string) (any, error) {
	var cur any = raw
	walked := ""
	for _, key := range path {
		m, err := asMap(cur, walked)
		if err != nil {
			return nil, err
		}
		next, ok := m[key]
		if !ok {
			return nil, &DecodeError{Detail: fmt.Sprintf("missing key %q under %q", key, walked)}
		}
		cur = next
		if walked == "" {
			walked = key
		} else {
			walked = walked + "." + key
		}
	}
	return cur, nil
}

// decodeCell unwraps the object-valued cells grid analytics use
// for rich values. Scalars pass through untouched.
func decodeCell(v any, deep bool) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}
	if text, ok := obj["displayText"]; ok {
		return text, nil
	}
	if val, ok := obj["displayValue"]; ok {
		return val, nil
	}
	if code, ok := obj["code"]; ok {
		return code, nil
	}
	if !deep {
		return nil, &DecodeError{Detail: "cell object has none of displayText/displayValue/code"}
	}
	// map analytics may nest rich values one level further
	out := map[string]any{}
	for k, nested := range obj {
		cell, err := decodeCell(nested, true)
		if err != nil {
			return nil, err
		}
		out[k] = cell
	}
	return out, nil
}

// decodeGridAt handles the common `columns` + `rows` grid found
// under varying metadata keys. Empty column names are dropped,
// which also drops their cells.
func decodeGridAt(container map[string]any, deep bool, rename func([]string) []string) (Table, error) {
	rawColumns, err := dig(container, "columns")
	if err != nil {
		return Table{}, err
	}
	columnList, err := asSlice(rawColumns, "columns")
	if err != nil {
		return Table{}, err
	}

	headers := make([]string, len(columnList))
	for i, c := range columnList {
		col, err := asMap(c, fmt.Sprintf("columns[%d]", i))
		if err != nil {
			return Table{}, err
		}
		name, _ := col["name"].(string)
		headers[i] = name
	}
	if rename != nil {
		headers = rename(headers)
	}

	rawRows, err := dig(container, "rows")
	if err != nil {
		return Table{}, err
	}
	rowList, err := asSlice(rawRows, "rows")
	if err != nil {
		return Table{}, err
	}

	var columns []string
	for _, h := range headers {
		if h != "" {
			columns = append(columns, h)
		}
	}

	rows := make([]Row, 0, len(rowList))
	for i, r := range rowList {
		cells, err := asSlice(r, fmt.Sprintf("rows[%d]", i))
		if err != nil {
			return Table{}, err
		}
		row := Row{}
		for j, cell := range cells {
			if j >= len(headers) || headers[j] == "" {
				continue
			}
			value, err := decodeCell(cell, deep)
			if err != nil {
				return Table{}, err
			}
			row[headers[j]] = value
		}
		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}, nil
}

// decodeGrid normalizes the standard analytic response:
// {"table": {"columns": [{"name": ...}], "rows": [[...]]}}.
func decodeGrid(raw map[string]any) (Table, error) {
	container, err := dig(raw, "table")
	if err != nil {
		return Table{}, err
	}
	tableObj, err := asMap(container, "table")
	if err != nil {
		return Table{}, err
	}
	return decodeGridAt(tableObj, false, nil)
}

// decodeMap normalizes map analytics, which bury the grid under
// map.map, leave the region column unnamed and sometimes omit the
// value column's name in favor of the map's title caption.
func decodeMap(raw map[string]any) (Table, error) {
	container, err := dig(raw, "map", "map")
	if err != nil {
		return Table{}, err
	}
	mapObj, err := asMap(container, "map.map")
	if err != nil {
		return Table{}, err
	}
	return decodeGridAt(mapObj, true, func(headers []string) []string {
		if len(headers) > 0 {
			headers[0] = "RegionFIPS"
		}
		if len(headers) > 1 && headers[1] == "" {
			caption, _ := mapObj["titleCaption"].(string)
			headers[1] = caption
		}
		return headers
	})
}

// decodeDemographics normalizes the demographic profile response,
// a sectioned layout of [label, percentage, {value}] triples.
func decodeDemographics(raw map[string]any) (Table, error) {
	rawSections, err := dig(raw, "table", "sections")
	if err != nil {
		return Table{}, err
	}
	sections, err := asSlice(rawSections, "table.sections")
	if err != nil {
		return Table{}, err
	}

	columns := []string{"Demographic", "Value", "Percentage"}
	var rows []Row
	for i, s := range sections {
		section, err := asMap(s, fmt.Sprintf("sections[%d]", i))
		if err != nil {
			return Table{}, err
		}
		sectionRows, err := asSlice(section["rows"], fmt.Sprintf("sections[%d].rows", i))
		if err != nil {
			return Table{}, err
		}
		for j, r := range sectionRows {
			cells, err := asSlice(r, fmt.Sprintf("sections[%d].rows[%d]", i, j))
			if err != nil {
				return Table{}, err
			}
			if len(cells) < 3 {
				return Table{}, &DecodeError{Detail: fmt.Sprintf("demographic row %d/%d has %d cells, want 3", i, j, len(cells))}
			}
			labelCell, err := asMap(cells[0], fmt.Sprintf("sections[%d].rows[%d][0]", i, j))
			if err != nil {
				return Table{}, err
			}
			valueCell, err := asMap(cells[2], fmt.Sprintf("sections[%d].rows[%d][2]", i, j))
			if err != nil {
				return Table{}, err
			}
			rows = append(rows, Row{
				"Demographic": labelCell["displayText"],
				"Value":       valueCell["value"],
				"Percentage":  cells[1],
			})
		}
	}
	return Table{Columns: columns, Rows: rows}, nil
}

// decodeTrend normalizes trend charts into a two-column table of
// (Date, value). Dates stay as the vendor's epoch-millisecond
// numbers. The value column is titled from the chart's subtitle
// and y-axis when present, else from the chart title.
func decodeTrend(raw map[string]any) (Table, error) {
	rawChart, err := dig(raw, "chart")
	if err != nil {
		return Table{}, err
	}
	chart, err := asMap(rawChart, "chart")
	if err != nil {
		return Table{}, err
	}

	valueColumn := ""
	if subtitles, ok := chart["subTitle"].([]any); ok && len(subtitles) > 0 {
		if axis, ok := chart["yAxis"].(map[string]any); ok {
			if axisTitle, ok := axis["title"].(string); ok {
				prefix, _ := subtitles[0].(string)
				valueColumn = prefix + axisTitle
			}
		}
	}
	if valueColumn == "" {
		title, ok := chart["title"].(string)
		if !ok {
			return Table{}, &DecodeError{Detail: "chart has neither subTitle/yAxis.title nor title"}
		}
		valueColumn = title
	}

	rawSeries, err := dig(chart, "series")
	if err != nil {
		return Table{}, err
	}
	series, err := asSlice(rawSeries, "chart.series")
	if err != nil {
		return Table{}, err
	}
	if len(series) == 0 {
		return Table{Columns: []string{"Date", valueColumn}}, nil
	}
	first, err := asMap(series[0], "chart.series[0]")
	if err != nil {
		return Table{}, err
	}
	data, err := asSlice(first["data"], "chart.series[0].data")
	if err != nil {
		return Table{}, err
	}

	rows := make([]Row, 0, len(data))
	for i, d := range data {
		pair, err := asSlice(d, fmt.Sprintf("chart.series[0].data[%d]", i))
		if err != nil {
			return Table{}, err
		}
		if len(pair) < 2 {
			return Table{}, &DecodeError{Detail: fmt.Sprintf("trend datapoint %d has %d values, want 2", i, len(pair))}
		}
		rows = append(rows, Row{"Date": pair[0], valueColumn: pair[1]})
	}
	return Table{Columns: []string{"Date", valueColumn}, Rows: rows}, nil
}

// decodeDataRows normalizes v2 analytics, which already return
// row-like objects under "data".
func decodeDataRows(raw map[string]any) (Table, error) {
	rawData, err := dig(raw, "data")
	if err != nil {
		return Table{}, err
	}
	return decodeRowObjects(rawData, "data")
}

// decodeTimeSeries normalizes the over-time v2 analytics, whose
// rows live one level deeper under data[0].series.
func decodeTimeSeries(raw map[string]any) (Table, error) {
	rawData, err := dig(raw, "data")
	if err != nil {
		return Table{}, err
	}
	data, err := asSlice(rawData, "data")
	if err != nil {
		return Table{}, err
	}
	if len(data) == 0 {
		return Table{}, nil
	}
	first, err := asMap(data[0], "data[0]")
	if err != nil {
		return Table{}, err
	}
	return decodeRowObjects(first["series"], "data[0].series")
}

func decodeRowObjects(v any, path string) (Table, error) {
	list, err := asSlice(v, path)
	if err != nil {
		return Table{}, err
	}
	items := make([]map[string]any, 0, len(list))
	for i, entry := range list {
		item, err := asMap(entry, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return Table{}, err
		}
		items = append(items, item)
	}
	return Tabulate(items), nil
}

// decodeResumes normalizes resume forensics, a list of per-category
// subtables. The vendor's Unclassified bucket is dropped.
func decodeResumes(raw map[string]any) (Table, error) {
	rawTables, err := dig(raw, "tables")
	if err != nil {
		return Table{}, err
	}
	tables, err := asSlice(rawTables, "tables")
	if err != nil {
		return Table{}, err
	}

	columns := []string{"Category", "Label", "Counts", "Entry Wages"}
	var rows []Row
	for i, t := range tables {
		subtable, err := asMap(t, fmt.Sprintf("tables[%d]", i))
		if err != nil {
			return Table{}, err
		}
		category := subtable["category"]
		subtableRows, err := asSlice(subtable["rows"], fmt.Sprintf("tables[%d].rows", i))
		if err != nil {
			return Table{}, err
		}
		for j, r := range subtableRows {
			entry, err := asMap(r, fmt.Sprintf("tables[%d].rows[%d]", i, j))
			if err != nil {
				return Table{}, err
			}
			if entry["label"] == "Unclassified" {
				continue
			}
			rows = append(rows, Row{
				"Category":    category,
				"Label":       entry["label"],
				"Counts":      entry["count"],
				"Entry Wages": entry["entryWages"],
			})
		}
	}
	return Table{Columns: columns, Rows: rows}, nil
}

package jobseq

// Selector is the vendor's universal code+type pair, used to pick
// regions (FIPS), occupations (SOC), industries (NAICS), programs
// (CIP) and skills. The type discriminates what kind of code it
// is, e.g. region type 1 is a county.
type Selector struct {
	Code string `json:"code"`
	Type int    `json:"type"`
}

func (s Selector) isZero() bool {
	return s == Selector{}
}

// or returns s unless it is unset, then the fallback.
func (s Selector) or(fallback Selector) Selector {
	if s.isZero() {
		return fallback
	}
	return s
}

func orString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func orInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

// body assembles the vendor's request grammar. Keys follow the
// wire names exactly.
type body map[string]any

func newBody() body {
	return body{}
}

func (b body) set(key string, value any) body {
	b[key] = value
	return b
}

// single selector object, e.g. {"region": {"code": ..., "type": ...}}
func (b body) selector(key string, s Selector) body {
	b[key] = s
	return b
}

// one-element selector array, e.g. {"regions": [{...}]}
func (b body) selectorList(key string, s Selector) body {
	b[key] = []Selector{s}
	return b
}

// nest wraps the accumulated payload under a single key,
// used by analytics that multiplex several datasets behind one
// endpoint UUID.
func (b body) nest(key string) body {
	return body{key: map[string]any(b)}
}

// Filter narrows RTI queries by a posting attribute.
type Filter struct {
	Field      string `json:"field"`
	Key        string `json:"key"`
	FilterType string `json:"filterType"`
}

// filters always sends the key, an absent filter list still
// appears as an empty array on the wire.
func (b body) filters(filters []Filter) body {
	if filters == nil {
		filters = []Filter{}
	}
	b["filters"] = filters
	return b
}

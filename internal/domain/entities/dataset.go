package entities

// Dataset is the session-scoped participant table. It is immutable by
// convention: regeneration, upload and filtering all produce a new value,
// never an in-place mutation, so re-filtering stays idempotent.
type Dataset struct {
	Participants []Participant `json:"participants"`
	Seed         int64         `json:"seed"`
	Domains      []string      `json:"domains"`
	Regions      []string      `json:"regions"`
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Participants)
}

// Empty reports whether the dataset holds no rows
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// DistinctDomains returns the domain labels present in row order.
func (d *Dataset) DistinctDomains() []string {
	return distinct(d, func(p Participant) string { return p.Domain })
}

// DistinctRegions returns the region labels present in row order.
func (d *Dataset) DistinctRegions() []string {
	return distinct(d, func(p Participant) string { return p.Region })
}

// DistinctColleges returns the college labels present in row order.
func (d *Dataset) DistinctColleges() []string {
	return distinct(d, func(p Participant) string { return p.College })
}

func distinct(d *Dataset, key func(Participant) string) []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]struct{}, 16)
	out := make([]string, 0, 16)
	for _, p := range d.Participants {
		k := key(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

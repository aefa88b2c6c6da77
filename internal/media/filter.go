package media

// Filters specifies optional search predicates. The year match runs before
// the result cap, and input order is preserved.
type Filters struct {
	Year  *int
	Limit int // 0 = no limit
}

// Apply runs the filter pipeline over a reduced listing.
func (f Filters) Apply(in []ReducedRecord) []ReducedRecord {
	out := in

	if f.Year != nil {
		filtered := make([]ReducedRecord, 0, len(out))
		for _, rec := range out {
			if rec.Year == *f.Year {
				filtered = append(filtered, rec)
			}
		}
		out = filtered
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}

	return out
}

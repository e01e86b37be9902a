package journal

// Commit reconciles a record into a collection, keeping at most one entry
// per calendar date. An existing entry with the same Date is replaced in
// place (position preserved); otherwise the record is appended. The input
// slice is not mutated. Committing the same record twice is idempotent.
//
// Collection order is insertion order; consumers that need chronological
// order sort by Date themselves.
func Commit(rec DailyRecord, collection []DailyRecord) []DailyRecord {
	out := make([]DailyRecord, len(collection))
	copy(out, collection)

	for i := range out {
		if out[i].Date == rec.Date {
			out[i] = rec
			return out
		}
	}
	return append(out, rec)
}

// FindByDate returns the record for the given date, or false when absent.
// Absence is not an error; callers default-construct instead.
func FindByDate(collection []DailyRecord, date string) (DailyRecord, bool) {
	for _, r := range collection {
		if r.Date == date {
			return r, true
		}
	}
	return DailyRecord{}, false
}

// Toggle flips an item's membership in a tag set: present → removed,
// absent → appended. The input is not mutated. Surfaces use this to turn a
// tap on a tag chip into a full-field replacement for Partial.Apply.
func Toggle(set []string, item string) []string {
	for i, s := range set {
		if s == item {
			out := make([]string, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...)
		}
	}
	out := make([]string, len(set), len(set)+1)
	copy(out, set)
	return append(out, item)
}

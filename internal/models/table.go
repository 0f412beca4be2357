package models

// TableMatch is one scored pairing inside a compatibility table row.
type TableMatch struct {
	TargetNakshatraID int `json:"targetNakshatraId"`
	Value             int `json:"value"`
}

// TableRow enumerates the scores for one seeker nakshatra.
type TableRow struct {
	SourceNakshatraID int          `json:"sourceNakshatraId"`
	Matching          []TableMatch `json:"matching"`
}

// CompatibilityTable is one of the four static porutham tables. An empty
// Rows slice is the degraded form used when the table failed to load.
type CompatibilityTable struct {
	Name string     `json:"name"`
	Rows []TableRow `json:"rows"`
}

// Row returns the row for the given seeker nakshatra, or nil when the
// table has no entry for it.
func (t CompatibilityTable) Row(sourceNakshatraID int) *TableRow {
	for i := range t.Rows {
		if t.Rows[i].SourceNakshatraID == sourceNakshatraID {
			return &t.Rows[i]
		}
	}
	return nil
}

// TableSet holds the four tables, keyed by seeker gender and tier. It is
// immutable after construction and passed by dependency injection so tests
// can substitute fixture tables.
type TableSet struct {
	MaleUthamam    CompatibilityTable
	MaleMathimam   CompatibilityTable
	FemaleUthamam  CompatibilityTable
	FemaleMathimam CompatibilityTable
}

// Uthamam returns the uthamam table for the given seeker gender.
func (s TableSet) Uthamam(seeker Gender) CompatibilityTable {
	if seeker == GenderMale {
		return s.MaleUthamam
	}
	return s.FemaleUthamam
}

// Mathimam returns the mathimam table for the given seeker gender.
func (s TableSet) Mathimam(seeker Gender) CompatibilityTable {
	if seeker == GenderMale {
		return s.MaleMathimam
	}
	return s.FemaleMathimam
}

package filters

// Snapshot is an immutable copy of every filter value at one point in time.
type Snapshot struct {
	values [fieldCount]string
}

// Value returns "" for unknown fields.
func (s Snapshot) Value(field FilterField) string {
	i := field.index()
	if i < 0 {
		return ""
	}

	return s.values[i]
}

// Values returns all ten fields, empty ones included.
func (s Snapshot) Values() map[FilterField]string {
	values := make(map[FilterField]string, fieldCount)
	for i, field := range AllFilterFields {
		values[field] = s.values[i]
	}

	return values
}

func (s Snapshot) IsEmpty() bool {
	return s == Snapshot{}
}

// SnapshotOf builds a snapshot from a partial mapping; unknown keys are ignored.
func SnapshotOf(values map[FilterField]string) Snapshot {
	var snapshot Snapshot
	for field, value := range values {
		if i := field.index(); i >= 0 {
			snapshot.values[i] = value
		}
	}

	return snapshot
}

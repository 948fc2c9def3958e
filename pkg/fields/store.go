package fields

// Values maps field names to their current string value. Absent and empty
// entries are equivalent.
type Values map[string]string

// Clone returns a copy of v. A nil receiver yields an empty, non-nil map.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Get returns the value stored under name or "".
func (v Values) Get(name string) string {
	if v == nil {
		return ""
	}
	return v[name]
}

// Store holds the current field values of a wizard session. It is plain
// storage: no validation or normalisation happens here.
type Store struct {
	values Values
}

// NewStore seeds the store with a copy of initial.
func NewStore(initial Values) *Store {
	return &Store{values: initial.Clone()}
}

// Set overwrites exactly one field, leaving every other entry untouched.
func (s *Store) Set(name, value string) {
	if s.values == nil {
		s.values = make(Values)
	}
	s.values[name] = value
}

// Get returns the current value of name, or "" when unset.
func (s *Store) Get(name string) string {
	if s == nil {
		return ""
	}
	return s.values.Get(name)
}

// All returns a snapshot of the stored values. Mutating the snapshot does not
// affect the store.
func (s *Store) All() Values {
	if s == nil {
		return Values{}
	}
	return s.values.Clone()
}

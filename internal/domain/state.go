package domain

// State is the whole timesheet: the active entry, if any, and the completed
// entries in insertion order.
type State struct {
	Current *TimeEntry
	Entries []TimeEntry
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{}
	if s.Current != nil {
		current := s.Current.Clone()
		out.Current = &current
	}
	if s.Entries != nil {
		out.Entries = make([]TimeEntry, len(s.Entries))
		for i, e := range s.Entries {
			out.Entries[i] = e.Clone()
		}
	}
	return out
}

// IndexOf returns the position of the completed entry with the given id.
func (s State) IndexOf(id string) (int, bool) {
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

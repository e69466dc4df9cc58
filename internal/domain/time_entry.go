package domain

import (
	"fmt"
	"strings"
	"time"
)

// EntryType distinguishes worked time from paid absence.
type EntryType string

const (
	EntryTypeWork    EntryType = "work"
	EntryTypeAbsence EntryType = "absence"
)

// ParseEntryType converts user input into an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(strings.ToLower(strings.TrimSpace(s))) {
	case EntryTypeWork:
		return EntryTypeWork, nil
	case EntryTypeAbsence:
		return EntryTypeAbsence, nil
	default:
		return "", fmt.Errorf("unknown entry type %q: expected %q or %q", s, EntryTypeWork, EntryTypeAbsence)
	}
}

// IsValid reports whether t is one of the known entry types.
func (t EntryType) IsValid() bool {
	return t == EntryTypeWork || t == EntryTypeAbsence
}

func (t EntryType) String() string {
	return string(t)
}

// Pause is a break inside an active entry. A nil End marks the open pause.
type Pause struct {
	Start   time.Time
	End     *time.Time
	Comment *string
}

// IsOpen returns true while the break is still running.
func (p Pause) IsOpen() bool {
	return p.End == nil
}

// Duration returns the length of a closed pause. Open pauses and pauses whose
// end precedes their start count as zero.
func (p Pause) Duration() time.Duration {
	if p.End == nil {
		return 0
	}
	if d := p.End.Sub(p.Start); d > 0 {
		return d
	}
	return 0
}

// TimeEntry represents one tracked activity, either in progress or completed.
// This is a pure domain model without database-specific concerns.
type TimeEntry struct {
	ID               string
	StartTime        time.Time
	EndTime          *time.Time
	Type             EntryType
	Activity         string
	ProjectID        string
	Category         string
	Comment          string
	ExternalComment  string
	Pauses           []Pause
	AdjustedDuration *time.Duration
}

// IsActive returns true if the entry has not been stopped yet.
func (te TimeEntry) IsActive() bool {
	return te.EndTime == nil
}

// IsPaused returns true if the last pause is still open.
func (te TimeEntry) IsPaused() bool {
	_, ok := te.OpenPause()
	return ok
}

// OpenPause returns the index of the open pause, if any. Only the last pause
// can be open.
func (te TimeEntry) OpenPause() (int, bool) {
	if len(te.Pauses) == 0 {
		return 0, false
	}
	last := len(te.Pauses) - 1
	if te.Pauses[last].IsOpen() {
		return last, true
	}
	return 0, false
}

// PausedDuration sums all pauses. An open pause is counted up to now.
func (te TimeEntry) PausedDuration(now time.Time) time.Duration {
	var total time.Duration
	for _, p := range te.Pauses {
		if p.IsOpen() {
			if d := now.Sub(p.Start); d > 0 {
				total += d
			}
			continue
		}
		total += p.Duration()
	}
	return total
}

// Elapsed returns wall-clock time since start, ignoring pauses. For a
// completed entry the end time is used instead of now.
func (te TimeEntry) Elapsed(now time.Time) time.Duration {
	end := now
	if te.EndTime != nil {
		end = *te.EndTime
	}
	if d := end.Sub(te.StartTime); d > 0 {
		return d
	}
	return 0
}

// Worked returns elapsed time minus pauses, never negative.
func (te TimeEntry) Worked(now time.Time) time.Duration {
	end := now
	if te.EndTime != nil {
		end = *te.EndTime
	}
	worked := te.Elapsed(now) - te.PausedDuration(end)
	if worked < 0 {
		return 0
	}
	return worked
}

// Duration returns the adjusted duration, or zero when none is recorded.
func (te TimeEntry) Duration() time.Duration {
	if te.AdjustedDuration == nil {
		return 0
	}
	return *te.AdjustedDuration
}

// Clone returns a deep copy that shares no pointers with te.
func (te TimeEntry) Clone() TimeEntry {
	out := te
	if te.EndTime != nil {
		end := *te.EndTime
		out.EndTime = &end
	}
	if te.AdjustedDuration != nil {
		d := *te.AdjustedDuration
		out.AdjustedDuration = &d
	}
	if te.Pauses != nil {
		out.Pauses = make([]Pause, len(te.Pauses))
		for i, p := range te.Pauses {
			out.Pauses[i] = p.clone()
		}
	}
	return out
}

func (p Pause) clone() Pause {
	out := Pause{Start: p.Start}
	if p.End != nil {
		end := *p.End
		out.End = &end
	}
	if p.Comment != nil {
		c := *p.Comment
		out.Comment = &c
	}
	return out
}

package domain

import "strings"

// ActivityConfig is one selectable activity in the catalog.
type ActivityConfig struct {
	Activity        string
	ProjectID       string
	Category        string
	ExternalComment string
}

// IsValid checks that the activity can be used to start an entry.
func (a ActivityConfig) IsValid() bool {
	return strings.TrimSpace(a.Activity) != "" &&
		strings.TrimSpace(a.ProjectID) != "" &&
		strings.TrimSpace(a.Category) != ""
}

// String returns the activity name for display purposes.
func (a ActivityConfig) String() string {
	return a.Activity
}

// StartRequest builds the request for starting this activity.
func (a ActivityConfig) StartRequest(entryType EntryType, comment string) StartRequest {
	return StartRequest{
		Type:            entryType,
		Activity:        a.Activity,
		ProjectID:       a.ProjectID,
		Category:        a.Category,
		Comment:         comment,
		ExternalComment: a.ExternalComment,
	}
}

// ProjectConfig groups activities booked against one project. Type tells
// which kind of entry the activities serve.
type ProjectConfig struct {
	ProjectID  string
	Name       string
	Type       EntryType
	Activities []ActivityConfig
}

// Activity returns the activity with the given name.
func (p ProjectConfig) Activity(name string) (ActivityConfig, bool) {
	for _, a := range p.Activities {
		if a.Activity == name {
			return a, true
		}
	}
	return ActivityConfig{}, false
}

// Clone returns a copy with its own activity slice.
func (p ProjectConfig) Clone() ProjectConfig {
	out := p
	if p.Activities != nil {
		out.Activities = append([]ActivityConfig(nil), p.Activities...)
	}
	return out
}

// CloneProjects deep-copies a catalog.
func CloneProjects(projects []ProjectConfig) []ProjectConfig {
	if projects == nil {
		return nil
	}
	out := make([]ProjectConfig, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}

// DefaultCatalog returns the catalog used when none has been saved yet.
func DefaultCatalog() []ProjectConfig {
	const absence = "890085"
	const work = "890023"

	return []ProjectConfig{
		{
			ProjectID: absence,
			Name:      "Abwesenheit",
			Type:      EntryTypeAbsence,
			Activities: []ActivityConfig{
				{Activity: "Uni Zeit", ProjectID: absence, Category: "H03147 - Other Paid Time off", ExternalComment: "studying at DHBW university"},
				{Activity: "Krankheitstage", ProjectID: absence, Category: "H03128 - Sickness Leave", ExternalComment: "Sickness Leave"},
				{Activity: "Urlaub", ProjectID: absence, Category: "H03118 - Holiday", ExternalComment: "Holiday"},
				{Activity: "Feiertag", ProjectID: absence, Category: "H03003 - Time off - Paid absence / non-holiday", ExternalComment: "Bank holiday"},
				{Activity: "Wellness Day", ProjectID: absence, Category: "H03003 - Time off - Paid absence / non-holiday", ExternalComment: "Wellness Day"},
			},
		},
		{
			ProjectID: work,
			Name:      "Arbeitszeit im Unternehmen",
			Type:      EntryTypeWork,
			Activities: []ActivityConfig{
				{Activity: "Ausbildungszeit im Unternehmen", ProjectID: work, Category: "H03107 - Internal - Professional development and training", ExternalComment: "z. B. Tutorials, Lehrgänge, etc., die während der Arbeitszeit gemacht werden"},
				{Activity: "Projektarbeit", ProjectID: work, Category: "H03108 - Internal - Career development / mentoring", ExternalComment: "Projectarbeit"},
				{Activity: "One2One Termine", ProjectID: work, Category: "H03108 - Internal - Career development / mentoring", ExternalComment: "development, mentoring"},
				{Activity: "Interne Meetings", ProjectID: work, Category: "H03104 - Internal - Non-client / internal meeting", ExternalComment: "Munich Location Meeting, Merkle Germany Monthly Session, etc."},
				{Activity: "Interne Arbeit", ProjectID: work, Category: "H03105 - Internal - Internal - Non-client operational activities", ExternalComment: "Internal Arbeit"},
			},
		},
	}
}

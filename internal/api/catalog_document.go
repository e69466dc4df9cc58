package api

import "timesheet/internal/domain"

// catalogDocument is the YAML layout used by catalog import and export.
// Activities inherit the project id of the project they are listed under.
type catalogDocument struct {
	Projects []projectDocument `yaml:"projects"`
}

type projectDocument struct {
	ID         string             `yaml:"id"`
	Name       string             `yaml:"name"`
	Type       string             `yaml:"type"`
	Activities []activityDocument `yaml:"activities"`
}

type activityDocument struct {
	Name            string `yaml:"name"`
	Category        string `yaml:"category"`
	ExternalComment string `yaml:"external_comment,omitempty"`
}

func newCatalogDocument(projects []domain.ProjectConfig) catalogDocument {
	doc := catalogDocument{Projects: make([]projectDocument, 0, len(projects))}
	for _, p := range projects {
		pd := projectDocument{
			ID:         p.ProjectID,
			Name:       p.Name,
			Type:       string(p.Type),
			Activities: make([]activityDocument, 0, len(p.Activities)),
		}
		for _, a := range p.Activities {
			pd.Activities = append(pd.Activities, activityDocument{
				Name:            a.Activity,
				Category:        a.Category,
				ExternalComment: a.ExternalComment,
			})
		}
		doc.Projects = append(doc.Projects, pd)
	}
	return doc
}

func (d catalogDocument) toDomain() []domain.ProjectConfig {
	projects := make([]domain.ProjectConfig, 0, len(d.Projects))
	for _, pd := range d.Projects {
		p := domain.ProjectConfig{
			ProjectID:  pd.ID,
			Name:       pd.Name,
			Type:       domain.EntryType(pd.Type),
			Activities: make([]domain.ActivityConfig, 0, len(pd.Activities)),
		}
		for _, ad := range pd.Activities {
			p.Activities = append(p.Activities, domain.ActivityConfig{
				Activity:        ad.Name,
				ProjectID:       pd.ID,
				Category:        ad.Category,
				ExternalComment: ad.ExternalComment,
			})
		}
		projects = append(projects, p)
	}
	return projects
}

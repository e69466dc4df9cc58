package api

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet/internal/domain"
	apperrors "timesheet/internal/errors"
)

const sampleCatalog = `projects:
  - id: "100"
    name: Client
    type: work
    activities:
      - name: Coding
        category: C1
      - name: Review
        category: C2
        external_comment: code review
  - id: "200"
    name: Leave
    type: absence
    activities:
      - name: Holiday
        category: A1
`

func TestImportCatalog(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	count, err := api.catalog.ImportCatalog(ctx, strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	projects, err := api.catalog.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, domain.EntryTypeAbsence, projects[1].Type)
	assert.Equal(t, domain.ActivityConfig{
		Activity:        "Review",
		ProjectID:       "100",
		Category:        "C2",
		ExternalComment: "code review",
	}, projects[0].Activities[1])

	session, err := api.business.StartActivity(ctx, StartActivityRequest{Activity: "Holiday"})
	require.NoError(t, err)
	assert.Equal(t, domain.EntryTypeAbsence, session.Entry.Type)
}

func TestImportCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"empty document", ""},
		{"no projects", "projects: []\n"},
		{"malformed yaml", "projects: [unclosed"},
		{"unknown field", "projects:\n  - id: \"1\"\n    colour: red\n"},
		{"unknown type", "projects:\n  - id: \"1\"\n    name: X\n    type: overtime\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := setupTestAPI(t)

			_, err := api.catalog.ImportCatalog(context.Background(), strings.NewReader(tt.document))

			assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		})
	}
}

func TestExportCatalog_RoundTrip(t *testing.T) {
	source := setupTestAPI(t)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, source.catalog.ExportCatalog(ctx, &buf))
	assert.Contains(t, buf.String(), "id: \"890085\"")
	assert.Contains(t, buf.String(), "name: Urlaub")

	target := setupTestAPI(t)
	require.NoError(t, target.catalog.RemoveProject(ctx, "890023"))

	count, err := target.catalog.ImportCatalog(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	want, err := source.catalog.ListProjects(ctx)
	require.NoError(t, err)
	got, err := target.catalog.ListProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogEdits(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	require.NoError(t, api.catalog.AddProject(ctx, domain.ProjectConfig{ProjectID: "300", Name: "Side", Type: domain.EntryTypeWork}))
	require.NoError(t, api.catalog.AddActivity(ctx, "300", domain.ActivityConfig{Activity: "Docs", Category: "D1"}))
	require.NoError(t, api.catalog.UpdateActivity(ctx, "300", "Docs", domain.ActivityConfig{Activity: "Documentation", Category: "D1"}))

	session, err := api.business.StartActivity(ctx, StartActivityRequest{Activity: "Documentation"})
	require.NoError(t, err)
	assert.Equal(t, "300", session.Entry.ProjectID)

	require.NoError(t, api.catalog.RemoveActivity(ctx, "300", "Documentation"))
	assert.ErrorIs(t, api.catalog.RemoveProject(ctx, "999"), apperrors.ErrNotFound)
}

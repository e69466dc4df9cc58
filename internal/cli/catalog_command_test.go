package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet/internal/domain"
)

const importedCatalog = `projects:
  - id: "100"
    name: Client
    type: work
    activities:
      - name: Coding
        category: C1
  - id: "200"
    name: Leave
    type: absence
    activities:
      - name: Holiday
        category: A1
        external_comment: annual leave
`

func TestCatalogCommand_List(t *testing.T) {
	ta := setupTestApp(t)

	require.NoError(t, NewCatalogCommand(ta.app).List(context.Background(), nil))

	output := ta.out.String()
	assert.Contains(t, output, "890085")
	assert.Contains(t, output, "Abwesenheit")
	assert.Contains(t, output, "Projektarbeit")
	assert.Contains(t, output, "H03118 - Holiday")
}

func TestCatalogCommand_Edits(t *testing.T) {
	ta := setupTestApp(t)
	ctx := context.Background()

	cmd := NewCatalogCommand(ta.app)
	require.NoError(t, cmd.AddProject(ctx, []string{"300", "Client", "work"}))

	cmd = NewCatalogCommand(ta.app)
	cmd.Category = "C1"
	cmd.ExternalComment = "client work"
	require.NoError(t, cmd.AddActivity(ctx, []string{"300", "Coding"}))

	cmd = NewCatalogCommand(ta.app)
	cmd.Name = "Programming"
	require.NoError(t, cmd.UpdateActivity(ctx, []string{"300", "Coding"}))

	assert.Equal(t, "Added project 300 (Client)\n"+
		"Added activity Coding to project 300\n"+
		"Updated activity Programming in project 300\n", ta.out.String())

	projects, err := ta.app.catalogAPI.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	activity, ok := projects[2].Activity("Programming")
	require.True(t, ok)
	assert.Equal(t, domain.ActivityConfig{
		Activity:        "Programming",
		ProjectID:       "300",
		Category:        "C1",
		ExternalComment: "client work",
	}, activity)

	ta.out.Reset()
	require.NoError(t, NewCatalogCommand(ta.app).RemoveActivity(ctx, []string{"300", "Programming"}))
	require.NoError(t, NewCatalogCommand(ta.app).RemoveProject(ctx, []string{"300"}))
	assert.Equal(t, "Removed activity Programming from project 300\nRemoved project 300\n", ta.out.String())
}

func TestCatalogCommand_EditErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown type", func(t *testing.T) {
		ta := setupTestApp(t)

		err := NewCatalogCommand(ta.app).AddProject(ctx, []string{"300", "Client", "overtime"})

		assert.Contains(t, err.Error(), `unknown entry type "overtime"`)
	})

	t.Run("duplicate project", func(t *testing.T) {
		ta := setupTestApp(t)

		err := NewCatalogCommand(ta.app).AddProject(ctx, []string{"890023", "Again", "work"})

		assert.EqualError(t, err, "failed to add project: invalid argument for project_id: project already exists")
		assert.Empty(t, ta.out.String())
	})

	t.Run("unknown project", func(t *testing.T) {
		ta := setupTestApp(t)

		err := NewCatalogCommand(ta.app).RemoveProject(ctx, []string{"999"})

		assert.EqualError(t, err, "failed to remove project: project not found: 999")
	})

	t.Run("update unknown activity", func(t *testing.T) {
		ta := setupTestApp(t)
		cmd := NewCatalogCommand(ta.app)
		cmd.Category = "X"

		err := cmd.UpdateActivity(ctx, []string{"890023", "Nothing"})

		assert.EqualError(t, err, "failed to update activity: activity not found: Nothing")
	})

	t.Run("wrong argument count", func(t *testing.T) {
		ta := setupTestApp(t)

		err := NewCatalogCommand(ta.app).AddActivity(ctx, []string{"890023"})

		assert.Contains(t, err.Error(), "usage: ts catalog add-activity")
	})
}

func TestCatalogCommand_ImportExport(t *testing.T) {
	ta := setupTestApp(t)
	ctx := context.Background()
	dir := t.TempDir()

	source := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(source, []byte(importedCatalog), 0o644))

	require.NoError(t, NewCatalogCommand(ta.app).Import(ctx, []string{source}))
	assert.Equal(t, "Imported 2 projects\n", ta.out.String())

	ta.out.Reset()
	require.NoError(t, NewCatalogCommand(ta.app).Export(ctx, nil))
	assert.Contains(t, ta.out.String(), "name: Holiday")
	assert.Contains(t, ta.out.String(), "external_comment: annual leave")
	assert.NotContains(t, ta.out.String(), "Projektarbeit")

	ta.out.Reset()
	target := filepath.Join(dir, "export.yaml")
	require.NoError(t, NewCatalogCommand(ta.app).Export(ctx, []string{target}))
	assert.Equal(t, "Exported catalog to "+target+"\n", ta.out.String())

	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(written), "id: \"100\"")
}

func TestCatalogCommand_ImportErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		ta := setupTestApp(t)

		err := NewCatalogCommand(ta.app).Import(ctx, []string{filepath.Join(t.TempDir(), "none.yaml")})

		assert.Contains(t, err.Error(), "failed to open catalog file")
	})

	t.Run("empty document keeps catalog", func(t *testing.T) {
		ta := setupTestApp(t)
		source := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(source, nil, 0o644))

		err := NewCatalogCommand(ta.app).Import(ctx, []string{source})

		assert.Contains(t, err.Error(), "document is empty")
		projects, listErr := ta.app.catalogAPI.ListProjects(ctx)
		require.NoError(t, listErr)
		assert.Len(t, projects, 2)
	})
}

package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := NewStore(
		filepath.Join(dir, "files"),
		filepath.Join(dir, "links.json"),
		filepath.Join(dir, "portfolio.json"),
	)
	return store, dir
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

// --- ListFiles ---

func TestListFiles_MissingDirectory(t *testing.T) {
	store, _ := newTestStore(t)

	files, err := store.ListFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{}, files)
}

func TestListFiles_ReturnsEntries(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "files", "resume.pdf"), "pdf")
	writeFile(t, filepath.Join(dir, "files", "notes.txt"), "notes")

	files, err := store.ListFiles()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"resume.pdf", "notes.txt"}, files)
}

// --- FilePath ---

func TestFilePath_ExistingFile(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "files", "resume.pdf"), "pdf")

	path, err := store.FilePath("resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "files", "resume.pdf"), path)
}

func TestFilePath_Missing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.FilePath("nope.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilePath_RejectsTraversal(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "secret.txt"), "secret")

	for _, name := range []string{"../secret.txt", "..", ".", "", "sub/secret.txt", "files/../../secret.txt"} {
		_, err := store.FilePath(name)
		assert.ErrorIs(t, err, ErrNotFound, "name %q should be rejected", name)
	}
}

func TestFilePath_RejectsDirectories(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "files", "sub"), 0o755))

	_, err := store.FilePath("sub")
	assert.ErrorIs(t, err, ErrNotFound)
}

// --- Links ---

func TestLinks_MissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	links, err := store.Links()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(links))
}

func TestLinks_RoundTripIdentity(t *testing.T) {
	store, dir := newTestStore(t)
	raw := `[{"title":"Go","url":"https://go.dev"},{"title":"Echo","url":"https://echo.labstack.com"}]`
	writeFile(t, filepath.Join(dir, "links.json"), raw)

	links, err := store.Links()
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(links))
}

func TestLinks_MalformedJSON(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "links.json"), `[{"title": "broken"`)

	_, err := store.Links()
	assert.Error(t, err)
}

// --- Portfolio ---

func TestPortfolio_MissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Portfolio()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPortfolio_Verbatim(t *testing.T) {
	store, dir := newTestStore(t)
	raw := `{"bio":{"name":"Cormac"},"projects":[{"name":"hub"}],"extra":42}`
	writeFile(t, filepath.Join(dir, "portfolio.json"), raw)

	doc, err := store.Portfolio()
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(doc))
}

func TestPortfolioProjects_PresentField(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "portfolio.json"), `{"projects":[{"name":"a"},{"name":"b"}]}`)

	projects, err := store.PortfolioProjects()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"a"},{"name":"b"}]`, string(projects))
}

func TestPortfolioProjects_AbsentField(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "portfolio.json"), `{"bio":{}}`)

	projects, err := store.PortfolioProjects()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(projects))
}

func TestPortfolioProjects_MissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	projects, err := store.PortfolioProjects()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(projects))
}

func TestPortfolioBio(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "portfolio.json"), `{"bio":{"name":"Cormac","location":"Ireland"}}`)

	bio, err := store.PortfolioBio()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Cormac","location":"Ireland"}`, string(bio))
}

func TestPortfolioBio_MissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	bio, err := store.PortfolioBio()
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(bio))
}

func TestPortfolioField_NullTreatedAsAbsent(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "portfolio.json"), `{"projects":null}`)

	projects, err := store.PortfolioProjects()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(projects))
}

func TestPortfolioField_RawMessageSurvivesReMarshal(t *testing.T) {
	store, dir := newTestStore(t)
	writeFile(t, filepath.Join(dir, "portfolio.json"), `{"projects":[{"name":"a","tags":["go","web"]}]}`)

	projects, err := store.PortfolioProjects()
	require.NoError(t, err)

	out, err := json.Marshal(map[string]json.RawMessage{"projects": projects})
	require.NoError(t, err)
	assert.JSONEq(t, `{"projects":[{"name":"a","tags":["go","web"]}]}`, string(out))
}

package records

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taxon struct {
	TaxonomyID int64  `json:"taxonomy_id"`
	Name       string `json:"scientific_name"`
}

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	var got map[string]any
	require.NoError(t, Load(write(t, dir, "p.yaml", "refseq: 1\nworkspace: RefData\n"), &got))
	assert.Equal(t, map[string]any{"refseq": float64(1), "workspace": "RefData"}, got)

	var tx taxon
	require.NoError(t, Load(write(t, dir, "t.json", `{"taxonomy_id": 562, "scientific_name": "Escherichia coli"}`), &tx))
	assert.Equal(t, taxon{TaxonomyID: 562, Name: "Escherichia coli"}, tx)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	var v map[string]any

	assert.Error(t, Load(filepath.Join(dir, "nope.yaml"), &v))
	assert.ErrorContains(t, Load(write(t, dir, "empty.yaml", ""), &v), "file is empty")
	assert.ErrorContains(t, Load(write(t, dir, "bad.yaml", "a: [\n"), &v), "bad.yaml")

	var tx taxon
	assert.ErrorContains(t, Load(write(t, dir, "typed.yaml", "taxonomy_id: abc\n"), &tx), "typed.yaml")
}

func TestLoadList(t *testing.T) {
	dir := t.TempDir()

	one, err := LoadList[taxon](write(t, dir, "one.yaml", "taxonomy_id: 562\n"))
	require.NoError(t, err)
	assert.Equal(t, []taxon{{TaxonomyID: 562}}, one)

	many, err := LoadList[taxon](write(t, dir, "many.yaml", "- taxonomy_id: 562\n- taxonomy_id: 1423\n"))
	require.NoError(t, err)
	assert.Equal(t, []taxon{{TaxonomyID: 562}, {TaxonomyID: 1423}}, many)

	_, err = LoadList[taxon](write(t, dir, "badentry.yaml", "- taxonomy_id: 1\n- taxonomy_id: x\n"))
	assert.ErrorContains(t, err, "badentry.yaml[1]")
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a/ecoli.yaml", "taxonomy_id: 562\n")
	write(t, dir, "a/b/bsub.yaml", "- taxonomy_id: 1423\n")
	write(t, dir, "a/b/notes.txt", "ignored")

	got, err := Glob[taxon](filepath.Join(dir, "**", "*.yaml"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []taxon{{TaxonomyID: 562}, {TaxonomyID: 1423}}, got)

	_, err = Glob[taxon](filepath.Join(dir, "missing", "*.yaml"))
	assert.ErrorIs(t, err, ErrNoMatches)

	_, err = Glob[taxon]("[")
	assert.ErrorContains(t, err, "invalid pattern")
}

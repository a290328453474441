package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type genome struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Size   int    `json:"size,omitempty"`
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, genome{ID: "g1", Source: "refseq"}))
	assert.Equal(t, "{\n  \"id\": \"g1\",\n  \"source\": \"refseq\"\n}\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tw := Table(&buf)
	_, _ = tw.Write([]byte("ID\tSOURCE\ng1\trefseq\n"))
	require.NoError(t, tw.Flush())
	assert.Equal(t, "ID  SOURCE\ng1  refseq\n", buf.String())
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "%d genomes skipped", 3)
	assert.Equal(t, "Warning: 3 genomes skipped\n", buf.String())
}

func TestQuery(t *testing.T) {
	items := []genome{{ID: "g1", Source: "refseq"}, {ID: "g2", Source: "ensembl"}}

	got, err := Query(items, "$[*].id")
	require.NoError(t, err)
	assert.Equal(t, []any{"g1", "g2"}, got)

	got, err = Query(items, "$[?(@.source == 'ensembl')].id")
	require.NoError(t, err)
	assert.Equal(t, []any{"g2"}, got)

	got, err = Query(items, "$[*].missing")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Query(items, "$[")
	assert.ErrorContains(t, err, "invalid --query")
}

func TestFilter(t *testing.T) {
	items := []genome{
		{ID: "g1", Source: "refseq", Size: 4600000},
		{ID: "g2", Source: "ensembl", Size: 4200000},
		{ID: "g3", Source: "refseq"},
	}

	tests := []struct {
		name string
		expr string
		want []string
	}{
		{name: "equality", expr: `source == "refseq"`, want: []string{"g1", "g3"}},
		{name: "numeric", expr: `size != nil && size > 4300000`, want: []string{"g1"}},
		{name: "undefined key", expr: `size == nil`, want: []string{"g3"}},
		{name: "string op", expr: `id startsWith "g2"`, want: []string{"g2"}},
		{name: "none", expr: `false`, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.expr)
			require.NoError(t, err)
			kept, err := Apply(f, items)
			require.NoError(t, err)

			ids := []string{}
			for _, g := range kept {
				ids = append(ids, g.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilter_ScalarItems(t *testing.T) {
	f, err := NewFilter(`it > 1`)
	require.NoError(t, err)
	kept, err := Apply(f, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, kept)
}

func TestFilter_Errors(t *testing.T) {
	_, err := NewFilter(`source ==`)
	assert.ErrorContains(t, err, "invalid --filter")

	_, err = NewFilter(`"not a bool"`)
	assert.Error(t, err)

	kept, err := Apply[genome](nil, []genome{{ID: "g1"}})
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

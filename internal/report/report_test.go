package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/sartorproj/qqt/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sample(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New([]string{"x", "name"}, 0)
	for _, row := range [][]string{{"1", "a"}, {"2", "b"}, {"3", ""}} {
		require.NoError(t, ds.AppendRow(row))
	}
	return ds
}

func TestStatJSON(t *testing.T) {
	b, err := json.Marshal([]Stat{1.5, Stat(math.NaN()), Stat(math.Inf(1))})
	require.NoError(t, err)
	assert.Equal(t, "[1.5,null,null]", string(b))

	assert.Equal(t, "-", Stat(math.NaN()).String())
	assert.Equal(t, "2.5", Stat(2.5).String())
}

func TestRenderSummariesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummaries(&buf, "json", Describe("s.csv", sample(t))))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "s.csv", got[0]["source"])
	assert.Equal(t, "x", got[0]["label"])
	assert.Equal(t, 2.0, got[0]["mean"])
	assert.Equal(t, 1.0, got[0]["sample_variance"])
	assert.Nil(t, got[1]["mean"], "text column has no mean")
	assert.Equal(t, 2.0, got[1]["non_blank"])
}

func TestRenderSummariesYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummaries(&buf, "yaml", Describe("", sample(t))))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "name", got[1]["label"])
	assert.Equal(t, 3, got[0]["rows"])
	_, hasSource := got[0]["source"]
	assert.False(t, hasSource)
}

func TestRenderSummariesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummaries(&buf, "table", Describe("s.csv", sample(t))))

	out := buf.String()
	assert.Contains(t, out, "MEAN")
	assert.Contains(t, out, "s.csv")
	assert.Contains(t, out, "name")

	buf.Reset()
	require.NoError(t, RenderSummaries(&buf, "table", nil))
	assert.Equal(t, "(0 columns)\n", buf.String())
}

func TestRenderUnknownFormat(t *testing.T) {
	assert.Error(t, RenderSummaries(&bytes.Buffer{}, "xml", nil))
	assert.Error(t, RenderRows(&bytes.Buffer{}, "xml", Rows{}))
}

func TestHead(t *testing.T) {
	ds := sample(t)

	rows := Head(ds, 2)
	assert.Equal(t, []string{"x", "name"}, rows.Labels)
	assert.Equal(t, [][]string{{"1", "a"}, {"2", "b"}}, rows.Rows)
	assert.Equal(t, 3, rows.Total)

	assert.Len(t, Head(ds, 50).Rows, 3)
}

func TestRenderRowsTable(t *testing.T) {
	ds := dataset.New([]string{"", ""}, 0)
	require.NoError(t, ds.AppendRow([]string{"7", "eight"}))

	var buf bytes.Buffer
	require.NoError(t, RenderRows(&buf, "table", Head(ds, 10)))

	out := buf.String()
	assert.Contains(t, out, "#0")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "eight")
	assert.True(t, strings.HasSuffix(out, "(1 of 1 rows)\n"))
}

func TestRenderRowsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderRows(&buf, "json", Head(sample(t), 1)))

	var got Rows
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, [][]string{{"1", "a"}}, got.Rows)
	assert.Equal(t, 3, got.Total)
}

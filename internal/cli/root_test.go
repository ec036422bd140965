package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sartorproj/qqt/csvload"
	"github.com/sartorproj/qqt/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the root command in an empty working directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	t.Log(errOut.String())
	return out.String(), err
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDescribeJSON(t *testing.T) {
	a := writeCSV(t, "a.csv", "x,y\n1,a\n2,b\n3,\n")
	b := writeCSV(t, "b.csv", "# preamble\nz\n10\n20\n")

	out, err := run(t, "describe", "-f", "json", "--log-level", "debug", a, b)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)

	assert.Equal(t, a, got[0]["source"])
	assert.Equal(t, "x", got[0]["label"])
	assert.Equal(t, 2.0, got[0]["mean"])
	assert.Equal(t, "y", got[1]["label"])
	assert.Equal(t, 2.0, got[1]["non_blank"])

	// Without --skip-lines the preamble is the header.
	assert.Equal(t, "# preamble", got[2]["label"])
}

func TestDescribeSkipLinesAndDelimiter(t *testing.T) {
	path := writeCSV(t, "semi.csv", "title\nA;B\n1;2\n3;4\n")

	out, err := run(t, "describe", "--skip-lines", "1", "--delimiter", ";", "-f", "json", path)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[1]["label"])
	assert.Equal(t, 3.0, got[1]["mean"])
}

func TestDescribeTable(t *testing.T) {
	path := writeCSV(t, "a.csv", "x\n1\n2\n")

	out, err := run(t, "describe", path)
	require.NoError(t, err)
	assert.Contains(t, out, "MEAN")
	assert.Contains(t, out, "1.5")
}

func TestDescribeParseError(t *testing.T) {
	path := writeCSV(t, "bad.csv", "A,B\n1,2,3\n")

	_, err := run(t, "describe", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, csvload.ErrFieldCount))
}

func TestDescribeRequiresSource(t *testing.T) {
	_, err := run(t, "describe")
	assert.Error(t, err)
}

func TestHeadHTTPTrimmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "A,B\n 1 , x \n2,y\n3,z\n")
	}))
	t.Cleanup(srv.Close)

	out, err := run(t, "head", "-n", "1", "--trim", "-f", "yaml", srv.URL)
	require.NoError(t, err)

	var got report.Rows
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, [][]string{{"1", "x"}}, got.Rows)
}

func TestHeadTable(t *testing.T) {
	path := writeCSV(t, "t.csv", "1;2;3;4;5;6")

	out, err := run(t, "head", "--headers=false", "--terminator", ";", "--delimiter", ",", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(6 of 6 rows)")
}

func TestInvalidConfig(t *testing.T) {
	path := writeCSV(t, "a.csv", "x\n1\n")

	_, err := run(t, "describe", "--delimiter", "ab", path)
	assert.Error(t, err)

	_, err = run(t, "describe", "--format", "xml", path)
	assert.Error(t, err)
}

// Package report renders dataset summaries and rows for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sartorproj/qqt/dataset"
	"gopkg.in/yaml.v3"
)

// Stat is a float that encodes NaN and ±Inf as JSON null.
type Stat float64

// MarshalJSON implements json.Marshaler.
func (s Stat) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (s Stat) String() string {
	f := float64(s)
	if math.IsNaN(f) {
		return "-"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}

// ColumnReport is the rendered form of one column summary.
type ColumnReport struct {
	Source         string `json:"source,omitempty" yaml:"source,omitempty"`
	Label          string `json:"label" yaml:"label"`
	Rows           int    `json:"rows" yaml:"rows"`
	NonBlank       int    `json:"non_blank" yaml:"non_blank"`
	Numeric        int    `json:"numeric" yaml:"numeric"`
	Sum            Stat   `json:"sum" yaml:"sum"`
	Mean           Stat   `json:"mean" yaml:"mean"`
	Min            Stat   `json:"min" yaml:"min"`
	Max            Stat   `json:"max" yaml:"max"`
	Median         Stat   `json:"median" yaml:"median"`
	PopVariance    Stat   `json:"pop_variance" yaml:"pop_variance"`
	PopStdDev      Stat   `json:"pop_stddev" yaml:"pop_stddev"`
	SampleVariance Stat   `json:"sample_variance" yaml:"sample_variance"`
	SampleStdDev   Stat   `json:"sample_stddev" yaml:"sample_stddev"`
}

// FromSummary converts a dataset summary.
func FromSummary(source string, s dataset.Summary) ColumnReport {
	return ColumnReport{
		Source:         source,
		Label:          s.Label,
		Rows:           s.Rows,
		NonBlank:       s.NonBlank,
		Numeric:        s.Numeric,
		Sum:            Stat(s.Sum),
		Mean:           Stat(s.Mean),
		Min:            Stat(s.Min),
		Max:            Stat(s.Max),
		Median:         Stat(s.Median),
		PopVariance:    Stat(s.PopVariance),
		PopStdDev:      Stat(s.PopStdDev),
		SampleVariance: Stat(s.SampleVariance),
		SampleStdDev:   Stat(s.SampleStdDev),
	}
}

// Describe builds one report per column of ds.
func Describe(source string, ds *dataset.Dataset) []ColumnReport {
	summaries := ds.Describe()
	out := make([]ColumnReport, len(summaries))
	for i, s := range summaries {
		out[i] = FromSummary(source, s)
	}
	return out
}

// RenderSummaries writes column reports in the given format.
func RenderSummaries(w io.Writer, format string, reports []ColumnReport) error {
	switch format {
	case "json":
		return renderJSON(w, reports)
	case "yaml":
		return renderYAML(w, reports)
	case "table":
		return renderSummaryTable(w, reports)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

func renderSummaryTable(w io.Writer, reports []ColumnReport) error {
	if len(reports) == 0 {
		_, _ = fmt.Fprintln(w, "(0 columns)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"source", "column", "rows", "non-blank", "numeric", "sum", "mean", "min", "max", "median", "var(p)", "std(p)", "var(s)", "std(s)"})

	for _, r := range reports {
		t.AppendRow(table.Row{
			r.Source, r.Label, r.Rows, r.NonBlank, r.Numeric,
			r.Sum, r.Mean, r.Min, r.Max, r.Median,
			r.PopVariance, r.PopStdDev, r.SampleVariance, r.SampleStdDev,
		})
	}

	t.Render()
	return nil
}

// Rows is the serialized form of the first rows of a dataset.
type Rows struct {
	Labels []string   `json:"labels" yaml:"labels"`
	Rows   [][]string `json:"rows" yaml:"rows"`
	Total  int        `json:"total_rows" yaml:"total_rows"`
}

// Head collects at most n rows of ds as raw text.
func Head(ds *dataset.Dataset, n int) Rows {
	if n > ds.RowCount() {
		n = ds.RowCount()
	}
	out := Rows{Labels: ds.Labels(), Rows: make([][]string, n), Total: ds.RowCount()}
	for i := 0; i < n; i++ {
		row := ds.Row(i)
		out.Rows[i] = make([]string, len(row))
		for j, v := range row {
			out.Rows[i][j] = v.Raw()
		}
	}
	return out
}

// RenderRows writes rows in the given format.
func RenderRows(w io.Writer, format string, rows Rows) error {
	switch format {
	case "json":
		return renderJSON(w, rows)
	case "yaml":
		return renderYAML(w, rows)
	case "table":
		return renderRowTable(w, rows)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

func renderRowTable(w io.Writer, rows Rows) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(rows.Labels))
	for i, label := range rows.Labels {
		if label == "" {
			label = "#" + strconv.Itoa(i)
		}
		header[i] = label
	}
	t.AppendHeader(header)

	for _, r := range rows.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = v
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d of %d rows)\n", len(rows.Rows), rows.Total)
	return nil
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

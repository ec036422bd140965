package dataset

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColumn(t *testing.T) {
	column := NewColumn("test", 10)

	assert.Equal(t, "test", column.Label())
	assert.Equal(t, 10, column.Series().Len())
	assert.Equal(t, 10, column.Len())
}

func TestNew(t *testing.T) {
	ds := New([]string{"A", "B", "C"}, 10)

	assert.Equal(t, 3, ds.ColumnCount())
	assert.Equal(t, 10, ds.RowCount())
	assert.Equal(t, "A", ds.ColumnLabel(0))
	assert.Equal(t, "B", ds.ColumnLabel(1))
	assert.Equal(t, "C", ds.ColumnLabel(2))
	assert.Equal(t, []string{"A", "B", "C"}, ds.Labels())
	assert.Equal(t, Null(), ds.At(9, 2))
}

func TestNewEmpty(t *testing.T) {
	ds := New(nil, 5)

	assert.Equal(t, 0, ds.ColumnCount())
	assert.Equal(t, 0, ds.RowCount())
}

func TestAppendRow(t *testing.T) {
	ds := New([]string{"A", "B", "C"}, 5)

	require.NoError(t, ds.AppendRow([]string{"1", "2", "3"}))

	assert.Equal(t, 6, ds.RowCount())
	assert.Equal(t, 1.0, ds.At(5, 0).Float())
	assert.Equal(t, 2.0, ds.At(5, 1).Float())
	assert.Equal(t, 3.0, ds.At(5, 2).Float())
}

func TestAppendRowKeepsPriorRows(t *testing.T) {
	ds := New([]string{"A", "B"}, 0)
	require.NoError(t, ds.AppendRow([]string{"1", "x"}))
	before := ds.Row(0)

	require.NoError(t, ds.AppendRow([]string{"2", "y"}))

	assert.Equal(t, 2, ds.RowCount())
	assert.Equal(t, before, ds.Row(0))
	assert.Equal(t, []Value{NewValue("2"), NewValue("y")}, ds.Row(1))
}

func TestAppendRowLengthMismatch(t *testing.T) {
	ds := New([]string{"A", "B", "C"}, 1)

	err := ds.AppendRow([]string{"1", "2"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRowLength))
	// Nothing was appended to any column.
	for i := 0; i < ds.ColumnCount(); i++ {
		assert.Equal(t, 1, ds.Column(i).Len())
	}
}

func TestIndexOutOfRange(t *testing.T) {
	ds := New([]string{"A"}, 2)

	tests := []struct {
		name string
		fn   func()
	}{
		{"row", func() { ds.At(2, 0) }},
		{"negative row", func() { ds.At(-1, 0) }},
		{"column", func() { ds.At(0, 1) }},
		{"label", func() { ds.ColumnLabel(5) }},
		{"row slice", func() { ds.Row(2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}
}

func TestColumnByLabel(t *testing.T) {
	ds := New([]string{"A", "B", "A"}, 0)
	require.NoError(t, ds.AppendRow([]string{"1", "2", "3"}))

	c, ok := ds.ColumnByLabel("A")
	require.True(t, ok)
	assert.Equal(t, "1", c.Series().At(0).Raw())

	_, ok = ds.ColumnByLabel("Z")
	assert.False(t, ok)
}

func TestDatasetTrimmed(t *testing.T) {
	ds := New([]string{"A", "B"}, 0)
	require.NoError(t, ds.AppendRow([]string{" 1 ", " x "}))

	trimmed := ds.Trimmed()

	assert.Equal(t, ds.Labels(), trimmed.Labels())
	assert.True(t, trimmed.At(0, 0).IsNumeric())
	assert.Equal(t, "x", trimmed.At(0, 1).Raw())
	assert.Equal(t, " 1 ", ds.At(0, 0).Raw())
	assert.True(t, trimmed.Trimmed().Equal(trimmed))
}

func TestDescribe(t *testing.T) {
	ds := New([]string{"n", "label"}, 0)
	for _, row := range [][]string{{"1", "a"}, {"", "b"}, {"3", ""}} {
		require.NoError(t, ds.AppendRow(row))
	}

	summaries := ds.Describe()
	require.Len(t, summaries, 2)

	n := summaries[0]
	assert.Equal(t, "n", n.Label)
	assert.Equal(t, 3, n.Rows)
	assert.Equal(t, 2, n.NonBlank)
	assert.Equal(t, 2, n.Numeric)
	assert.Equal(t, 4.0, n.Sum)
	assert.Equal(t, 2.0, n.Mean)
	assert.Equal(t, 1.0, n.Min)
	assert.Equal(t, 3.0, n.Max)
	assert.Equal(t, 1.0, n.PopVariance)
	assert.Equal(t, 2.0, n.SampleVariance)

	label := summaries[1]
	assert.Equal(t, 2, label.NonBlank)
	assert.Equal(t, 0, label.Numeric)
	assert.True(t, math.IsNaN(label.Mean))
	assert.True(t, math.IsNaN(label.Min))
}

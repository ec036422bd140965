package dataset

import "fmt"

// Dataset is an ordered set of columns that all have the same number of rows.
// Column 0 is the first column.
type Dataset struct {
	columns []*Column
}

// New creates a dataset with one column per label, each holding rowCount
// null values.
func New(labels []string, rowCount int) *Dataset {
	ds := &Dataset{columns: make([]*Column, 0, len(labels))}
	for _, label := range labels {
		ds.columns = append(ds.columns, NewColumn(label, rowCount))
	}
	return ds
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	return len(d.columns)
}

// RowCount returns the number of rows, or 0 when there are no columns.
func (d *Dataset) RowCount() int {
	if len(d.columns) == 0 {
		return 0
	}
	return d.columns[0].Len()
}

func (d *Dataset) checkColumn(col int) {
	if col < 0 || col >= len(d.columns) {
		panic(fmt.Errorf("%w: column %d of %d", ErrOutOfRange, col, len(d.columns)))
	}
}

// Column returns the column at index col. It panics if col is out of range.
func (d *Dataset) Column(col int) *Column {
	d.checkColumn(col)
	return d.columns[col]
}

// ColumnLabel returns the label of column col. It panics if col is out of range.
func (d *Dataset) ColumnLabel(col int) string {
	return d.Column(col).Label()
}

// ColumnByLabel returns the first column with the given label.
func (d *Dataset) ColumnByLabel(label string) (*Column, bool) {
	for _, c := range d.columns {
		if c.label == label {
			return c, true
		}
	}
	return nil, false
}

// Labels returns all column labels in index order.
func (d *Dataset) Labels() []string {
	labels := make([]string, len(d.columns))
	for i, c := range d.columns {
		labels[i] = c.label
	}
	return labels
}

// At returns the cell at (row, col). It panics if either index is out of range.
func (d *Dataset) At(row, col int) Value {
	return d.Column(col).series.At(row)
}

// Row returns the cells of one row in column order.
// It panics if row is out of range.
func (d *Dataset) Row(row int) []Value {
	if row < 0 || row >= d.RowCount() {
		panic(fmt.Errorf("%w: row %d of %d", ErrOutOfRange, row, d.RowCount()))
	}
	out := make([]Value, len(d.columns))
	for i, c := range d.columns {
		out[i] = c.series.values[row]
	}
	return out
}

// AppendRow appends one raw value to each column in index order.
// values must have exactly ColumnCount entries; otherwise ErrRowLength is
// returned and the dataset is left unchanged.
func (d *Dataset) AppendRow(values []string) error {
	if len(values) != len(d.columns) {
		return fmt.Errorf("%w: got %d values for %d columns", ErrRowLength, len(values), len(d.columns))
	}
	for i, c := range d.columns {
		c.series.AppendRaw(values[i])
	}
	return nil
}

// Trimmed returns a new dataset with the same labels and every value trimmed.
func (d *Dataset) Trimmed() *Dataset {
	out := &Dataset{columns: make([]*Column, len(d.columns))}
	for i, c := range d.columns {
		out.columns[i] = &Column{label: c.label, series: c.series.Trimmed()}
	}
	return out
}

// Equal reports whether both datasets have the same labels and values.
func (d *Dataset) Equal(o *Dataset) bool {
	if len(d.columns) != len(o.columns) {
		return false
	}
	for i := range d.columns {
		if d.columns[i].label != o.columns[i].label || !d.columns[i].series.Equal(o.columns[i].series) {
			return false
		}
	}
	return true
}

package dataset

// Column is a labelled Series. Labels are not required to be unique.
type Column struct {
	label  string
	series *Series
}

// NewColumn creates a column of size null values.
func NewColumn(label string, size int) *Column {
	return &Column{label: label, series: NewSeries(size)}
}

// Label returns the column label.
func (c *Column) Label() string {
	return c.label
}

// Series returns the column data. The series is owned by the column; append
// rows through Dataset.AppendRow so all columns stay the same length.
func (c *Column) Series() *Series {
	return c.series
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	return c.series.Len()
}

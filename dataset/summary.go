package dataset

// Summary holds the descriptive statistics of one column.
//
// Rows, NonBlank and Numeric are the three different counts a column has;
// Mean and the variances use Numeric as their denominator.
type Summary struct {
	Label          string
	Rows           int
	NonBlank       int
	Numeric        int
	Sum            float64
	Mean           float64
	Min            float64
	Max            float64
	Median         float64
	PopVariance    float64
	PopStdDev      float64
	SampleVariance float64
	SampleStdDev   float64
}

// Describe computes the summary of a single series under the given label.
func Describe(label string, s *Series) Summary {
	return Summary{
		Label:          label,
		Rows:           s.Len(),
		NonBlank:       s.CountNonBlank(),
		Numeric:        s.CountNumeric(),
		Sum:            s.Sum(),
		Mean:           s.Mean(),
		Min:            s.Min(),
		Max:            s.Max(),
		Median:         s.Median(),
		PopVariance:    s.PopulationVariance(),
		PopStdDev:      s.PopulationStdDev(),
		SampleVariance: s.SampleVariance(),
		SampleStdDev:   s.SampleStdDev(),
	}
}

// Describe returns one summary per column, in column order.
func (d *Dataset) Describe() []Summary {
	out := make([]Summary, len(d.columns))
	for i, c := range d.columns {
		out[i] = Describe(c.label, c.series)
	}
	return out
}

package dataset

import (
	"fmt"
	"math"
	"sort"
)

// Series is the ordered cell data of one column. Index i always refers to row i.
type Series struct {
	values []Value
}

// NewSeries creates a series of size null values.
func NewSeries(size int) *Series {
	if size < 0 {
		size = 0
	}
	return &Series{values: make([]Value, size)}
}

// SeriesFromStrings creates a series by parsing each raw string.
func SeriesFromStrings(raw []string) *Series {
	s := NewSeries(len(raw))
	for i, r := range raw {
		s.values[i] = NewValue(r)
	}
	return s
}

// SeriesFromValues creates a series holding a copy of vals.
func SeriesFromValues(vals []Value) *Series {
	s := NewSeries(len(vals))
	copy(s.values, vals)
	return s
}

// Seq creates an arithmetic sequence of count numeric values starting at
// start and advancing by increment.
func Seq(count int, start, increment float64) *Series {
	s := NewSeries(count)
	current := start
	for i := range s.values {
		s.values[i] = NumberValue(current)
		current += increment
	}
	return s
}

// Len returns the number of rows.
func (s *Series) Len() int {
	return len(s.values)
}

// At returns the value at row i. It panics if i is out of range.
func (s *Series) At(i int) Value {
	if i < 0 || i >= len(s.values) {
		panic(fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, len(s.values)))
	}
	return s.values[i]
}

// Values returns a copy of the underlying values.
func (s *Series) Values() []Value {
	out := make([]Value, len(s.values))
	copy(out, s.values)
	return out
}

// AppendRaw parses text and appends it as a new row.
func (s *Series) AppendRaw(text string) {
	s.values = append(s.values, NewValue(text))
}

// CountNonBlank returns the number of values with non-empty raw text.
// Text labels count here even though they are not numeric.
func (s *Series) CountNonBlank() int {
	n := 0
	for _, v := range s.values {
		if !v.IsBlank() {
			n++
		}
	}
	return n
}

// CountNumeric returns the number of numeric values.
func (s *Series) CountNumeric() int {
	n := 0
	for _, v := range s.values {
		if v.numeric {
			n++
		}
	}
	return n
}

// Sum adds the numeric interpretation of every value. Non-numeric values
// contribute 0.
func (s *Series) Sum() float64 {
	sum := 0.0
	for _, v := range s.values {
		sum += v.num
	}
	return sum
}

// Mean returns Sum divided by CountNumeric. The denominator is the number of
// numeric cells, not Len. An empty series, or one without numeric cells,
// yields NaN.
func (s *Series) Mean() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	return s.Sum() / float64(s.CountNumeric())
}

// sumSquaredDeviations returns the sum of squared deviations from Mean over
// numeric values only.
func (s *Series) sumSquaredDeviations() float64 {
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.values {
		if v.numeric {
			diff := v.num - mean
			sumSq += diff * diff
		}
	}
	return sumSq
}

// PopulationVariance returns the mean squared deviation over numeric values.
// An empty series yields 0; a non-empty one without numeric cells yields NaN.
func (s *Series) PopulationVariance() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.sumSquaredDeviations() / float64(s.CountNumeric())
}

// PopulationStdDev is the square root of PopulationVariance.
func (s *Series) PopulationStdDev() float64 {
	return math.Sqrt(s.PopulationVariance())
}

// SampleVariance divides the squared-deviation sum by CountNumeric-1.
// An empty series yields 0. With exactly one numeric value the result is
// 0/0, which is NaN; callers must tolerate that. A non-empty series without
// numeric cells yields 0/-1, which is negative zero.
func (s *Series) SampleVariance() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.sumSquaredDeviations() / float64(s.CountNumeric()-1)
}

// SampleStdDev is the square root of SampleVariance.
func (s *Series) SampleStdDev() float64 {
	return math.Sqrt(s.SampleVariance())
}

// Floats returns the numeric values in row order, skipping non-numeric cells.
func (s *Series) Floats() []float64 {
	out := make([]float64, 0, len(s.values))
	for _, v := range s.values {
		if v.numeric {
			out = append(out, v.num)
		}
	}
	return out
}

// Min returns the smallest numeric value, or NaN if there is none.
func (s *Series) Min() float64 {
	nums := s.Floats()
	if len(nums) == 0 {
		return math.NaN()
	}
	min := nums[0]
	for _, v := range nums[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest numeric value, or NaN if there is none.
func (s *Series) Max() float64 {
	nums := s.Floats()
	if len(nums) == 0 {
		return math.NaN()
	}
	max := nums[0]
	for _, v := range nums[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median of the numeric values, or NaN if there is none.
func (s *Series) Median() float64 {
	sorted := s.Floats()
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Trimmed returns a new series with every value trimmed.
func (s *Series) Trimmed() *Series {
	out := NewSeries(len(s.values))
	for i, v := range s.values {
		out.values[i] = v.Trimmed()
	}
	return out
}

// Equal reports whether both series hold equal values in the same order.
func (s *Series) Equal(o *Series) bool {
	if len(s.values) != len(o.values) {
		return false
	}
	for i := range s.values {
		if s.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

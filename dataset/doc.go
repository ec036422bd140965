// Package dataset provides an in-memory tabular data model with lazily typed
// cells and column statistics.
//
// A Dataset is an ordered set of labelled columns. Every column holds a
// Series of Values, and every Value keeps its original text alongside a
// best-effort numeric interpretation.
//
// # Values
//
// A cell is numeric when its text parses as a finite floating-point number:
//
//	dataset.NewValue("1.5").IsNumeric()   // true
//	dataset.NewValue("n/a").IsNumeric()   // false, Float() == 0
//	dataset.NewValue(" 2 ").Trimmed()     // numeric 2
//
// # Statistics
//
// A series distinguishes three counts:
//
//	s.Len()           // all rows
//	s.CountNonBlank() // rows with non-empty text
//	s.CountNumeric()  // rows that parsed as numbers
//
// Sum adds every cell's numeric interpretation (0 for text), while Mean and
// the variances divide by CountNumeric:
//
//	s := dataset.SeriesFromStrings([]string{"a", "1", "", "3"})
//	s.Sum()                // 4
//	s.Mean()               // 2
//	s.PopulationVariance() // 1
//	s.SampleVariance()     // 2
//
// SampleVariance of a series with a single numeric cell is NaN (0/0).
//
// # Building a Dataset
//
//	ds := dataset.New([]string{"A", "B"}, 0)
//	if err := ds.AppendRow([]string{"1", "x"}); err != nil {
//	    return err
//	}
//	ds.At(0, 0).Float() // 1
//
// Index access outside the dataset panics, the same way slice indexing does.
package dataset

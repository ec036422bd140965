// Package csvload converts delimited text into a dataset.Dataset.
//
// Conversion is a single synchronous pass over the input. Each call builds
// and returns its own dataset.
//
// # Converting Text
//
//	ds, err := csvload.TextToDataset("A,B,C\n1,2,3\n4,5,6", nil)
//	// ds.ColumnCount() == 3, ds.RowCount() == 2, ds.At(1, 2).Float() == 6
//
// # Options
//
// Options start from DefaultOptions and can be chained:
//
//	opts := csvload.DefaultOptions().
//	    WithSkipLines(2).   // drop a two-line preamble
//	    WithQuote('\'').    // 'quoted' fields
//	    WithDelimiter(';'). // semicolon-separated fields
//	    WithHeaders(false)  // first record is data, labels are empty
//
// The record terminator defaults to CRLF, which accepts "\r\n", "\r" and
// "\n". WithTerminator(b) ends records at the single byte b instead:
//
//	ds, err := csvload.TextToDataset("A,B;1,2;3,4", csvload.DefaultOptions().WithTerminator(';'))
//
// # Errors
//
// Structural problems fail the whole conversion with a *ParseError that
// wraps ErrFieldCount, ErrUnterminatedQuote or ErrEncoding. Cells that are
// not numeric are not errors; they become non-numeric dataset values.
//
// # Loading Files
//
//	ds, err := csvload.LoadFile("data.csv", nil)
//	ds, err := csvload.LoadFromReader(resp.Body, opts)
package csvload

// Package qqt provides an in-memory tabular dataset with column statistics
// and a CSV ingestion pipeline.
//
// Cells keep their original text and a best-effort numeric reading, so one
// column can mix numbers, labels and blanks. Statistics only count the
// numeric cells.
//
// # Features
//
//   - Dual text/number cell values with whitespace trimming
//   - Per-column counts (rows, non-blank, numeric), sum, mean, min, max, median
//   - Population and sample variance and standard deviation
//   - CSV conversion with configurable quote, delimiter, record terminator,
//     header row and leading-line skipping
//   - Loading from files and HTTP URLs
//
// # Quick Start
//
// Convert text and inspect a column:
//
//	ds, err := csvload.TextToDataset("A,B\n1,x\n3,y", nil)
//	mean := ds.Column(0).Series().Mean() // 2
//
// Load a remote CSV with a one-line preamble:
//
//	opts := csvload.DefaultOptions().WithSkipLines(1)
//	ds, err := remote.LoadHTTP(ctx, url, opts)
//
// # Packages
//
//   - dataset: Value, Series, Column and Dataset types with statistics
//   - csvload: delimited text to Dataset conversion
//   - remote: file and HTTP sources feeding csvload
//
// The qqt command in cmd/qqt wraps these packages.
package qqt

package csvload

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sartorproj/qqt/dataset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TextToDataset converts delimited text into a dataset.
//
// SkipLines physical lines are dropped first. With HasHeader the first record
// supplies the column labels; otherwise the columns are unlabelled and the
// first record is data. Every remaining record becomes one row, in order.
// Any malformed record fails the whole conversion and no dataset is returned.
func TextToDataset(text string, opts *Options) (*dataset.Dataset, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	body, skipped := skipLines(text, opts.SkipLines)
	sc := newScanner(body, opts, skipped+1)

	first, err := sc.next()
	if errors.Is(err, io.EOF) {
		return dataset.New(nil, 0), nil
	}
	if err != nil {
		return nil, err
	}

	var ds *dataset.Dataset
	if opts.HasHeader {
		ds = dataset.New(first, 0)
	} else {
		ds = dataset.New(make([]string, len(first)), 0)
		if err := ds.AppendRow(first); err != nil {
			return nil, err
		}
	}

	for {
		record, err := sc.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := ds.AppendRow(record); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// LoadFromReader reads all of r and converts it with TextToDataset.
// A leading UTF-8 or UTF-16 byte order mark selects the decoding and is
// removed; input without a BOM is passed through unchanged.
func LoadFromReader(r io.Reader, opts *Options) (*dataset.Dataset, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("csvload: read input: %w", err)
	}
	return TextToDataset(string(data), opts)
}

// LoadFile loads a dataset from a CSV file.
func LoadFile(filename string, opts *Options) (*dataset.Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadFromReader(file, opts)
}

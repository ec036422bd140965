package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sartorproj/qqt/csvload"
	"github.com/sartorproj/qqt/dataset"
)

// Loader fetches a source and converts it into a dataset.
type Loader struct {
	Fetcher Fetcher          // nil means FetcherFor(source, nil)
	Options *csvload.Options // nil means csvload.DefaultOptions()
	Logger  *slog.Logger     // nil means slog.Default()
}

// Load fetches source and converts its text. Fetch failures, including errors
// while reading the body, wrap ErrFetch; conversion failures are returned as
// produced by csvload.
func (l *Loader) Load(ctx context.Context, source string) (*dataset.Dataset, error) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	fetcher := l.Fetcher
	if fetcher == nil {
		fetcher = FetcherFor(source, nil)
	}

	logger.Debug("fetching source", "source", source)
	body, err := fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, source, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, source, err)
	}
	logger.Debug("fetched source", "source", source, "bytes", len(data))

	ds, err := csvload.LoadFromReader(bytes.NewReader(data), l.Options)
	if err != nil {
		logger.Debug("conversion failed", "source", source, "error", err)
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	logger.Debug("loaded dataset", "source", source, "columns", ds.ColumnCount(), "rows", ds.RowCount())
	return ds, nil
}

// LoadHTTP fetches url with the default HTTP client and converts it.
func LoadHTTP(ctx context.Context, url string, opts *csvload.Options) (*dataset.Dataset, error) {
	l := &Loader{Fetcher: &HTTPFetcher{Client: http.DefaultClient}, Options: opts}
	return l.Load(ctx, url)
}

// Package remote loads datasets from local files and HTTP sources.
//
// A Fetcher turns a source locator into a stream of text; Loader hands that
// stream to csvload and returns the resulting dataset. Network errors, non-2xx
// responses and timeouts are reported here, wrapped with ErrFetch, before any
// parsing happens.
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//	ds, err := remote.LoadHTTP(ctx, "https://example.com/data.csv", nil)
//
// Loader picks a fetcher per source when none is set:
//
//	l := &remote.Loader{Options: csvload.DefaultOptions().WithSkipLines(1)}
//	ds, err := l.Load(ctx, "testdata/temps.csv")
package remote

package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

var (
	// ErrFetch wraps every failure to obtain the source text.
	ErrFetch = errors.New("remote: fetch failed")

	// ErrStatus is matched by StatusError.
	ErrStatus = errors.New("remote: unexpected HTTP status")
)

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Source string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote: %s returned HTTP %d", e.Source, e.Code)
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}

// Fetcher opens the text behind a source locator.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (io.ReadCloser, error)
}

// HTTPFetcher fetches sources with HTTP GET.
type HTTPFetcher struct {
	Client *http.Client // nil means http.DefaultClient
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, source string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{Source: source, Code: resp.StatusCode}
	}
	return resp.Body, nil
}

// FileFetcher opens local files. Sources may be plain paths or file:// URLs.
type FileFetcher struct{}

// Fetch implements Fetcher.
func (FileFetcher) Fetch(ctx context.Context, source string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := source
	if strings.HasPrefix(source, "file://") {
		u, err := url.Parse(source)
		if err != nil {
			return nil, err
		}
		path = u.Path
	}
	return os.Open(path)
}

// IsURL reports whether source is an http or https URL.
func IsURL(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// FetcherFor returns an HTTPFetcher for http(s) URLs and a FileFetcher otherwise.
func FetcherFor(source string, client *http.Client) Fetcher {
	if IsURL(source) {
		return &HTTPFetcher{Client: client}
	}
	return FileFetcher{}
}

package refresher

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"
)

// UserAgent is sent with every refresh request.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4896.127 Safari/537.36"

const (
	requestTimeout = 60 * time.Second
	maxBodyRead    = 1 << 20
)

// LinkFetcher performs the GET for a single link.
type LinkFetcher interface {
	Fetch(ctx context.Context, link string) (statusCode int, err error)
}

// Fetcher is the HTTP implementation of LinkFetcher.
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return NewFetcherWithClient(&http.Client{
		Timeout: requestTimeout,
	})
}

// NewFetcherWithClient uses the given client instead of the default one.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch issues one GET to link and returns the response status. Any status
// is returned as-is; err is a *FetchError only when no response was obtained.
func (f *Fetcher) Fetch(ctx context.Context, link string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return 0, newInvalidURLError(err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, classify(ctx, err)
	}
	defer resp.Body.Close()

	// Drain a little of the body so the connection can be reused.
	_, _ = io.CopyN(io.Discard, resp.Body, maxBodyRead)

	return resp.StatusCode, nil
}

func classify(ctx context.Context, err error) *FetchError {
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return newCancelledError(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return newTimeoutError(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newTimeoutError(err)
	}
	return newNetworkError(err)
}

package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tartampluch/go-hijri/internal/config"
)

// ErrTooLarge is returned by the reader of a fetched collection once it
// grows past the fetcher's size cap.
var ErrTooLarge = errors.New(config.ErrFetchTooLarge)

// Source locates a remote vCard collection.
type Source struct {
	URL  string // CardDAV or WebDAV URL
	User string // HTTP Basic Auth Username
	Pass string // HTTP Basic Auth Password
}

// VCardFetcher retrieves a vCard collection.
type VCardFetcher interface {
	Fetch(ctx context.Context, src Source) (io.ReadCloser, error)
}

// HTTPFetcher downloads collections over HTTP(S).
type HTTPFetcher struct {
	Client *http.Client

	// MaxBytes caps the body size. Zero means config.MaxHTTPResponseSize.
	MaxBytes int64
}

// NewHTTPFetcher returns a fetcher using config.HTTPTimeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
	}
}

// Fetch downloads the vCards of src. Credentials and query parameters never
// reach the logs. Reading past the size cap fails with ErrTooLarge rather
// than truncating the stream.
func (f *HTTPFetcher) Fetch(ctx context.Context, src Source) (io.ReadCloser, error) {
	u, err := url.Parse(src.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompFetcher),
		slog.String(config.LogKeyURL, u.Scheme+"://"+u.Host+u.Path),
	)
	log.Debug(config.MsgFetchStart)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrFetchRequest, err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	req.Header.Set(config.HeaderAccept, config.MimeVCardAccept)
	if src.User != "" || src.Pass != "" {
		req.SetBasicAuth(src.User, src.Pass)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrFetchNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		log.Warn(config.MsgFetchStatus, slog.Int(config.LogKeyStatus, resp.StatusCode))
		return nil, fmt.Errorf("%s: %s", config.ErrFetchStatus, resp.Status)
	}

	limit := f.MaxBytes
	if limit <= 0 {
		limit = config.MaxHTTPResponseSize
	}
	if resp.ContentLength > limit {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, resp.ContentLength)
	}

	log.Info(config.MsgFetchOK, slog.Int64(config.LogKeyLength, resp.ContentLength))
	return &cappedBody{body: resp.Body, left: limit}, nil
}

func (f *HTTPFetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

// cappedBody reads at most left bytes from body. One byte more is an error.
type cappedBody struct {
	body io.ReadCloser
	left int64
}

func (c *cappedBody) Read(p []byte) (int, error) {
	if c.left < 0 {
		return 0, ErrTooLarge
	}
	// Ask for one byte past the cap to detect overflow.
	if int64(len(p)) > c.left+1 {
		p = p[:c.left+1]
	}
	n, err := c.body.Read(p)
	c.left -= int64(n)
	if c.left < 0 {
		return n + int(c.left), ErrTooLarge
	}
	return n, err
}

func (c *cappedBody) Close() error { return c.body.Close() }

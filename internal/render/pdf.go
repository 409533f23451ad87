// Package render counts pages of PDF artifacts on behalf of preview sessions.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"docsearch/internal/storage"
)

var (
	// ErrTooLarge is returned when an artifact exceeds the configured limit.
	ErrTooLarge = errors.New("document too large to render")
	// ErrNoSource is returned for object-key locators when no storage is configured.
	ErrNoSource = errors.New("no storage configured for locator")
)

// PDF fetches artifacts by locator and counts their pages with pdfcpu.
// Locators starting with http:// or https:// are downloaded; anything else is
// treated as an object key in storage.
type PDF struct {
	store    storage.Storage
	client   *http.Client
	maxBytes int64
}

// Option configures a PDF renderer.
type Option func(*PDF)

// WithHTTPClient replaces the default instrumented HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(p *PDF) {
		if c != nil {
			p.client = c
		}
	}
}

// NewPDF returns a renderer reading object keys from store (which may be nil) and
// refusing artifacts larger than maxBytes.
func NewPDF(store storage.Storage, maxBytes int64, httpTimeout time.Duration, opts ...Option) *PDF {
	p := &PDF{
		store:    store,
		maxBytes: maxBytes,
		client: &http.Client{
			Timeout:   httpTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PageCount reads the artifact at locator and returns its number of pages.
func (p *PDF) PageCount(ctx context.Context, locator string) (int, error) {
	data, err := p.fetch(ctx, locator)
	if err != nil {
		return 0, err
	}
	n, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("read pdf: %w", err)
	}
	return n, nil
}

func (p *PDF) fetch(ctx context.Context, locator string) ([]byte, error) {
	if isHTTP(locator) {
		return p.fetchHTTP(ctx, locator)
	}
	if p.store == nil {
		return nil, ErrNoSource
	}

	rc, info, err := p.store.Get(ctx, locator)
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer rc.Close()
	if err := p.checkSize(info.Size); err != nil {
		return nil, err
	}
	return p.readLimited(rc)
}

func (p *PDF) fetchHTTP(ctx context.Context, locator string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch document: unexpected status %d", resp.StatusCode)
	}
	if err := p.checkSize(resp.ContentLength); err != nil {
		return nil, err
	}
	return p.readLimited(resp.Body)
}

func (p *PDF) checkSize(size int64) error {
	if p.maxBytes > 0 && size > p.maxBytes {
		return fmt.Errorf("%w: %s exceeds %s", ErrTooLarge,
			units.HumanSize(float64(size)), units.HumanSize(float64(p.maxBytes)))
	}
	return nil
}

// readLimited guards against sources that under-report their size.
func (p *PDF) readLimited(r io.Reader) ([]byte, error) {
	if p.maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, p.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if int64(len(data)) > p.maxBytes {
		return nil, fmt.Errorf("%w: larger than %s", ErrTooLarge, units.HumanSize(float64(p.maxBytes)))
	}
	return data, nil
}

func isHTTP(locator string) bool {
	l := strings.ToLower(locator)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// IsURL reports whether locator is an absolute http(s) URL.
func IsURL(locator string) bool {
	return isHTTP(locator)
}

package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"docsearch/internal/storage"
	storeMocks "docsearch/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// buildPDF writes a minimal PDF with the given number of blank pages and a
// correct cross-reference table.
func buildPDF(pages int) []byte {
	var objs []string
	kids := make([]string, 0, pages)
	for i := 0; i < pages; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", i+3))
	}
	objs = append(objs, "<< /Type /Catalog /Pages 2 0 R >>")
	objs = append(objs, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages))
	for i := 0; i < pages; i++ {
		objs = append(objs, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>")
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

func TestPDF_PageCountFromStorage(t *testing.T) {
	ctx := context.Background()
	data := buildPDF(3)

	store := new(storeMocks.MockStorage)
	store.On("Get", mock.Anything, "documents/calendario.pdf").
		Return(io.NopCloser(bytes.NewReader(data)), storage.ObjectInfo{Size: int64(len(data))}, nil).Once()

	p := NewPDF(store, 1<<20, time.Second)
	n, err := p.PageCount(ctx, "documents/calendario.pdf")

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	store.AssertExpectations(t)
}

func TestPDF_PageCountFromHTTP(t *testing.T) {
	data := buildPDF(2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.pdf":
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write(data)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := NewPDF(nil, 1<<20, time.Second, WithHTTPClient(srv.Client()))

	t.Run("success", func(t *testing.T) {
		n, err := p.PageCount(context.Background(), srv.URL+"/ok.pdf")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := p.PageCount(context.Background(), srv.URL+"/missing.pdf")
		assert.ErrorContains(t, err, "unexpected status 404")
	})
}

func TestPDF_TooLarge(t *testing.T) {
	ctx := context.Background()

	t.Run("declared size", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		store.On("Get", mock.Anything, "big.pdf").
			Return(io.NopCloser(strings.NewReader("")), storage.ObjectInfo{Size: 2048}, nil).Once()

		_, err := NewPDF(store, 1024, time.Second).PageCount(ctx, "big.pdf")
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("under-reported size", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		store.On("Get", mock.Anything, "liar.pdf").
			Return(io.NopCloser(bytes.NewReader(make([]byte, 2048))), storage.ObjectInfo{Size: 10}, nil).Once()

		_, err := NewPDF(store, 1024, time.Second).PageCount(ctx, "liar.pdf")
		assert.ErrorIs(t, err, ErrTooLarge)
	})
}

func TestPDF_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("no storage for object key", func(t *testing.T) {
		_, err := NewPDF(nil, 0, time.Second).PageCount(ctx, "documents/a.pdf")
		assert.ErrorIs(t, err, ErrNoSource)
	})

	t.Run("storage error", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		store.On("Get", mock.Anything, "gone.pdf").
			Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound).Once()

		_, err := NewPDF(store, 0, time.Second).PageCount(ctx, "gone.pdf")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("not a pdf", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		store.On("Get", mock.Anything, "notes.txt").
			Return(io.NopCloser(strings.NewReader("just some text")), storage.ObjectInfo{Size: 14}, nil).Once()

		_, err := NewPDF(store, 0, time.Second).PageCount(ctx, "notes.txt")
		assert.ErrorContains(t, err, "read pdf")
	})

	t.Run("canceled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewPDF(nil, 0, time.Second, WithHTTPClient(srv.Client())).PageCount(cctx, srv.URL)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.org/a.pdf"))
	assert.True(t, IsURL("HTTP://example.org/a.pdf"))
	assert.False(t, IsURL("documents/a.pdf"))
	assert.False(t, IsURL("/documents/a.pdf"))
}

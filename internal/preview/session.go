// Package preview holds the per-document viewing state: load status, current page
// and zoom. Sessions are driven by a single caller; renderer completions may arrive
// from another goroutine and are matched to the open that issued them by generation.
package preview

import (
	"fmt"
	"math"
	"sync"

	"docsearch/internal/model"
)

// Status is the lifecycle state of a Session.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
	StatusClosed  Status = "closed"
)

// Zoom bounds and default.
const (
	MinZoom     = 0.5
	MaxZoom     = 2.0
	DefaultZoom = 1.2
)

const reasonNoPages = "document has no pages"

// LoadRequest is issued by Open when the document needs the external renderer.
// Its Generation must be passed back with the outcome.
type LoadRequest struct {
	Generation uint64
	DocumentID string
	Locator    string
	Async      bool
}

// Snapshot is a point-in-time copy of a session's observable state.
type Snapshot struct {
	ID          string                `json:"id"`
	DocumentID  string                `json:"document_id"`
	Type        model.Type            `json:"type"`
	Strategy    model.PreviewStrategy `json:"strategy"`
	Status      Status                `json:"status"`
	CurrentPage int                   `json:"current_page"`
	PageCount   int                   `json:"page_count"`
	Zoom        float64               `json:"zoom"`
	ZoomPercent int                   `json:"zoom_percent"`
	HasPrev     bool                  `json:"has_prev"`
	HasNext     bool                  `json:"has_next"`
	Reason      string                `json:"reason,omitempty"`
	Generation  uint64                `json:"generation"`
}

// Session is the viewing state of one document.
type Session struct {
	mu          sync.Mutex
	id          string
	doc         model.Document
	status      Status
	currentPage int
	pageCount   int
	zoom        float64
	reason      string
	generation  uint64
}

// NewSession returns an idle session.
func NewSession(id string) *Session {
	return &Session{id: id, status: StatusIdle, zoom: DefaultZoom}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Open starts viewing doc under a new generation. Types without paging become ready
// immediately with a single page; paging types stay loading and the returned
// request has Async set. Reopening a failed or ready session starts fresh.
func (s *Session) Open(doc model.Document) (LoadRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusClosed {
		return LoadRequest{}, ErrSessionClosed
	}

	doc.Type = model.ParseType(string(doc.Type))
	s.doc = doc
	s.generation++
	s.zoom = DefaultZoom
	s.reason = ""
	s.currentPage = 0
	s.pageCount = 0

	req := LoadRequest{Generation: s.generation, DocumentID: doc.ID, Locator: doc.Locator}
	if !doc.Type.Profile().SupportsPaging {
		s.status = StatusReady
		s.pageCount = 1
		s.currentPage = 1
		return req, nil
	}

	s.status = StatusLoading
	req.Async = true
	return req, nil
}

// OnLoadSuccess records a completed render. Completions for an older generation or
// a closed session are ignored. A page count below one fails the load.
func (s *Session) OnLoadSuccess(gen uint64, pageCount int) error {
	_, err := s.complete(gen, pageCount, "")
	return err
}

// OnLoadFailure records a failed render with an opaque reason. Stale completions are
// ignored. There is no automatic retry; the caller may Open again.
func (s *Session) OnLoadFailure(gen uint64, reason string) error {
	if reason == "" {
		reason = "load failed"
	}
	_, err := s.complete(gen, 0, reason)
	return err
}

// complete applies a load outcome; an empty reason means success. It reports
// whether the outcome was applied rather than dropped as stale.
func (s *Session) complete(gen uint64, pageCount int, reason string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale(gen) {
		return false, nil
	}
	if s.status != StatusLoading {
		return false, fmt.Errorf("%w: load completion while %s", ErrInvalidStateTransition, s.status)
	}

	switch {
	case reason != "":
		s.fail(reason)
	case pageCount < 1:
		s.fail(reasonNoPages)
	default:
		s.status = StatusReady
		s.pageCount = pageCount
		s.currentPage = 1
	}
	return true, nil
}

// SetPage moves to page n clamped to [1, PageCount].
func (s *Session) SetPage(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.pageable("set page"); err != nil {
		return err
	}
	s.currentPage = max(1, min(n, s.pageCount))
	return nil
}

// SetZoom adds delta to the zoom level, clamped to [MinZoom, MaxZoom].
func (s *Session) SetZoom(delta float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.pageable("set zoom"); err != nil {
		return err
	}
	if math.IsNaN(delta) {
		return nil
	}
	z := s.zoom + delta
	// Round away float drift from repeated 0.1 steps.
	z = math.Round(z*1e6) / 1e6
	s.zoom = math.Max(MinZoom, math.Min(z, MaxZoom))
	return nil
}

// Close discards the session. It is idempotent and invalidates any load in flight.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusClosed {
		return
	}
	s.status = StatusClosed
	s.generation++
	s.currentPage = 0
	s.pageCount = 0
}

// Status returns the current status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Snapshot returns a copy of the observable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:          s.id,
		DocumentID:  s.doc.ID,
		Type:        s.doc.Type,
		Status:      s.status,
		CurrentPage: s.currentPage,
		PageCount:   s.pageCount,
		Zoom:        s.zoom,
		ZoomPercent: int(math.Round(s.zoom * 100)),
		Reason:      s.reason,
		Generation:  s.generation,
	}
	if s.doc.Type != "" {
		snap.Strategy = s.doc.Type.Profile().Strategy
	}
	if s.status == StatusReady {
		snap.HasPrev = s.currentPage > 1
		snap.HasNext = s.currentPage < s.pageCount
	}
	return snap
}

func (s *Session) stale(gen uint64) bool {
	return s.status == StatusClosed || gen != s.generation
}

func (s *Session) fail(reason string) {
	s.status = StatusFailed
	s.reason = reason
	s.currentPage = 0
	s.pageCount = 0
}

func (s *Session) pageable(op string) error {
	if s.status != StatusReady {
		return fmt.Errorf("%w: %s while %s", ErrInvalidStateTransition, op, s.status)
	}
	if !s.doc.Type.Profile().SupportsPaging {
		return fmt.Errorf("%w: %s not supported for %s", ErrInvalidStateTransition, op, s.doc.Type)
	}
	return nil
}

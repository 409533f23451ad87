package preview

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"docsearch/internal/logging"
	"docsearch/internal/model"
)

// Renderer is the external page renderer. Given a document locator it reports the
// page count or an error.
type Renderer interface {
	PageCount(ctx context.Context, locator string) (int, error)
}

const defaultLoadTimeout = 30 * time.Second

type entry struct {
	session *Session
	doc     model.Document
	cancel  context.CancelFunc
}

// Manager owns preview sessions by ID and runs renderer loads in the background.
// It is safe for concurrent use.
type Manager struct {
	renderer Renderer
	timeout  time.Duration
	log      *logging.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	newID    func() string

	mu       sync.Mutex
	sessions map[string]*entry
	wg       sync.WaitGroup
}

// Option configures a Manager.
type Option func(*Manager)

// WithLoadTimeout bounds each renderer call.
func WithLoadTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *logging.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithMetrics enables Prometheus collectors.
func WithMetrics(mt *Metrics) Option {
	return func(m *Manager) { m.metrics = mt }
}

// WithIDGenerator overrides session ID generation.
func WithIDGenerator(f func() string) Option {
	return func(m *Manager) {
		if f != nil {
			m.newID = f
		}
	}
}

// NewManager returns a Manager that loads paged documents through r.
func NewManager(r Renderer, opts ...Option) *Manager {
	m := &Manager{
		renderer: r,
		timeout:  defaultLoadTimeout,
		log:      logging.Discard(),
		tracer:   otel.Tracer("docsearch/preview"),
		newID:    uuid.NewString,
		sessions: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open allocates a session for doc and opens it. For paged documents the returned
// snapshot is still loading; poll Get for the outcome.
func (m *Manager) Open(ctx context.Context, doc model.Document) (Snapshot, error) {
	e := &entry{session: NewSession(m.newID()), doc: doc}

	m.mu.Lock()
	m.sessions[e.session.ID()] = e
	m.mu.Unlock()

	m.metrics.sessionOpened(model.ParseType(string(doc.Type)))
	m.log.Log(map[string]any{
		"component":   "preview",
		"event":       "preview_open",
		"session_id":  e.session.ID(),
		"document_id": doc.ID,
		"type":        doc.Type,
	})

	if err := m.start(ctx, e); err != nil {
		return Snapshot{}, err
	}
	return e.session.Snapshot(), nil
}

// Reload opens the session's document again under a new generation. It is the
// manual retry path after a failed load.
func (m *Manager) Reload(ctx context.Context, id string) (Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err := m.start(ctx, e); err != nil {
		return Snapshot{}, err
	}
	return e.session.Snapshot(), nil
}

// Get returns the current snapshot of a session.
func (m *Manager) Get(id string) (Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	return e.session.Snapshot(), nil
}

// SetPage moves a session to page n. See Session.SetPage.
func (m *Manager) SetPage(id string, n int) (Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err := e.session.SetPage(n); err != nil {
		return Snapshot{}, err
	}
	return e.session.Snapshot(), nil
}

// SetZoom changes a session's zoom by delta. See Session.SetZoom.
func (m *Manager) SetZoom(id string, delta float64) (Snapshot, error) {
	e, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err := e.session.SetZoom(delta); err != nil {
		return Snapshot{}, err
	}
	return e.session.Snapshot(), nil
}

// Close discards a session and cancels its load, if any. Unknown IDs are ignored.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	var cancel context.CancelFunc
	if ok {
		cancel = e.cancel
		e.cancel = nil
	}
	m.mu.Unlock()

	if !ok {
		return
	}
	e.session.Close()
	if cancel != nil {
		cancel()
	}
	m.metrics.sessionClosed()
	m.log.Log(map[string]any{
		"component":  "preview",
		"event":      "preview_close",
		"session_id": id,
	})
}

// Shutdown closes every session and waits for in-flight loads to return.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		m.Close(id)
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

func (m *Manager) start(ctx context.Context, e *entry) error {
	req, err := e.session.Open(e.doc)
	if err != nil {
		return err
	}
	if !req.Async {
		return nil
	}

	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)

	m.mu.Lock()
	if e.cancel != nil {
		e.cancel()
	}
	// Close may have removed the entry before the cancel func was stored.
	if m.sessions[e.session.ID()] != e {
		m.mu.Unlock()
		cancel()
		return ErrSessionClosed
	}
	e.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go m.load(loadCtx, cancel, e.session, req)
	return nil
}

func (m *Manager) load(ctx context.Context, cancel context.CancelFunc, s *Session, req LoadRequest) {
	defer m.wg.Done()
	defer cancel()

	ctx, span := m.tracer.Start(ctx, "preview.load", trace.WithAttributes(
		attribute.String("preview.session_id", s.ID()),
		attribute.String("document.id", req.DocumentID),
		attribute.Int64("preview.generation", int64(req.Generation)),
	))
	defer span.End()

	start := time.Now()
	pages, err := m.renderer.PageCount(ctx, req.Locator)

	var reason string
	if err != nil {
		reason = failureReason(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, reason)
	}

	applied, cerr := s.complete(req.Generation, pages, reason)

	outcome := outcomeStale
	if applied {
		outcome = outcomeSuccess
		if reason != "" || pages < 1 {
			outcome = outcomeFailure
		}
	}
	m.metrics.loadDone(outcome, time.Since(start))

	fields := map[string]any{
		"component":   "preview",
		"event":       "preview_load",
		"outcome":     outcome,
		"session_id":  s.ID(),
		"document_id": req.DocumentID,
		"generation":  req.Generation,
		"pages":       pages,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if reason != "" {
		fields["reason"] = reason
	}
	if cerr != nil {
		fields["status"] = "error"
		fields["error"] = cerr.Error()
	}
	m.log.Log(fields)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "render timed out"
	case errors.Is(err, context.Canceled):
		return "render canceled"
	default:
		return err.Error()
	}
}

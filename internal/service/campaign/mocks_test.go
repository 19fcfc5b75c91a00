package campaign

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fundrik/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type repoMock struct {
	FindByIDFunc        func(ctx context.Context, id domain.EntityID) (*CampaignDTO, error)
	FindAllFunc         func(ctx context.Context) ([]CampaignDTO, error)
	ExistsFunc          func(ctx context.Context, c domain.Campaign) (bool, error)
	InsertFunc          func(ctx context.Context, c domain.Campaign) error
	InsertWithoutIDFunc func(ctx context.Context, title domain.CampaignTitle, active, open bool, target domain.CampaignTarget) (domain.EntityID, error)
	UpdateFunc          func(ctx context.Context, c domain.Campaign) error
	SaveFunc            func(ctx context.Context, c domain.Campaign) (SaveResult, error)
	DeleteFunc          func(ctx context.Context, id domain.EntityID) error

	mu          sync.Mutex
	insertCalls []domain.Campaign
	updateCalls []domain.Campaign
	saveCalls   []domain.Campaign
	deleteCalls []domain.EntityID
}

func (m *repoMock) FindByID(ctx context.Context, id domain.EntityID) (*CampaignDTO, error) {
	if m.FindByIDFunc == nil {
		panic("repoMock.FindByIDFunc: method is nil but FindByID was called")
	}
	return m.FindByIDFunc(ctx, id)
}

func (m *repoMock) FindAll(ctx context.Context) ([]CampaignDTO, error) {
	if m.FindAllFunc == nil {
		panic("repoMock.FindAllFunc: method is nil but FindAll was called")
	}
	return m.FindAllFunc(ctx)
}

func (m *repoMock) Exists(ctx context.Context, c domain.Campaign) (bool, error) {
	if m.ExistsFunc == nil {
		panic("repoMock.ExistsFunc: method is nil but Exists was called")
	}
	return m.ExistsFunc(ctx, c)
}

func (m *repoMock) Insert(ctx context.Context, c domain.Campaign) error {
	if m.InsertFunc == nil {
		panic("repoMock.InsertFunc: method is nil but Insert was called")
	}
	m.mu.Lock()
	m.insertCalls = append(m.insertCalls, c)
	m.mu.Unlock()
	return m.InsertFunc(ctx, c)
}

func (m *repoMock) InsertWithoutID(ctx context.Context, title domain.CampaignTitle, active, open bool, target domain.CampaignTarget) (domain.EntityID, error) {
	if m.InsertWithoutIDFunc == nil {
		panic("repoMock.InsertWithoutIDFunc: method is nil but InsertWithoutID was called")
	}
	return m.InsertWithoutIDFunc(ctx, title, active, open, target)
}

func (m *repoMock) Update(ctx context.Context, c domain.Campaign) error {
	if m.UpdateFunc == nil {
		panic("repoMock.UpdateFunc: method is nil but Update was called")
	}
	m.mu.Lock()
	m.updateCalls = append(m.updateCalls, c)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, c)
}

func (m *repoMock) Save(ctx context.Context, c domain.Campaign) (SaveResult, error) {
	if m.SaveFunc == nil {
		panic("repoMock.SaveFunc: method is nil but Save was called")
	}
	m.mu.Lock()
	m.saveCalls = append(m.saveCalls, c)
	m.mu.Unlock()
	return m.SaveFunc(ctx, c)
}

func (m *repoMock) Delete(ctx context.Context, id domain.EntityID) error {
	if m.DeleteFunc == nil {
		panic("repoMock.DeleteFunc: method is nil but Delete was called")
	}
	m.mu.Lock()
	m.deleteCalls = append(m.deleteCalls, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

type busMock struct {
	PublishFunc func(ctx context.Context, event any) error

	mu           sync.Mutex
	publishCalls []any
}

func (m *busMock) Publish(ctx context.Context, event any) error {
	m.mu.Lock()
	m.publishCalls = append(m.publishCalls, event)
	m.mu.Unlock()
	if m.PublishFunc == nil {
		return nil
	}
	return m.PublishFunc(ctx, event)
}

func (m *busMock) PublishCalls() []any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]any(nil), m.publishCalls...)
}

// ---------------------------------------------------------------------------
// Recording slog handler
// ---------------------------------------------------------------------------

type logEntry struct {
	level slog.Level
	msg   string
	attrs map[string]any
}

type logRecorder struct {
	mu      sync.Mutex
	entries []logEntry
}

func (r *logRecorder) entriesAt(level slog.Level) []logEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []logEntry
	for _, e := range r.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

type recordingHandler struct {
	rec  *logRecorder
	base []slog.Attr
}

func newTestLogger() (*slog.Logger, *logRecorder) {
	rec := &logRecorder{}
	return slog.New(&recordingHandler{rec: rec}), rec
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, r.NumAttrs()+len(h.base))
	for _, a := range h.base {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	h.rec.mu.Lock()
	h.rec.entries = append(h.rec.entries, logEntry{level: r.Level, msg: r.Message, attrs: attrs})
	h.rec.mu.Unlock()
	return nil
}

func (h *recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	base := append(append([]slog.Attr(nil), h.base...), attrs...)
	return &recordingHandler{rec: h.rec, base: base}
}

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

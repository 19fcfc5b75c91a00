package campaign

import (
	"context"
	"fmt"
	"log/slog"
)

// saveLogAction labels which command produced a log record. The save action
// exists for log labeling only: before an event is constructed it must be
// narrowed to create or update (see savedEvent).
type saveLogAction string

const (
	actionCreate saveLogAction = "create"
	actionUpdate saveLogAction = "update"
	actionSave   saveLogAction = "save"
)

// Operation names used as the structured "operation" key.
const (
	opSave     = "save_campaign"
	opDelete   = "delete_campaign"
	opFindByID = "find_campaign_by_id"
	opFindAll  = "find_all_campaigns"
)

// placeholderID appears in log records for campaigns whose identifier the
// adapter has not assigned yet.
const placeholderID = "[new]"

// opLogger emits the per-operation structured records shared by the command
// and query services. Every record carries the service name, component, and
// layer; levels follow a fixed scheme: debug for progress, info for command
// success, warn for swallowed publish failures, error for rethrown failures.
type opLogger struct {
	log *slog.Logger
}

func newOpLogger(log *slog.Logger, service string) *opLogger {
	return &opLogger{
		log: log.With(
			slog.String("service", service),
			slog.String("component", "campaigns"),
			slog.String("layer", "application"),
		),
	}
}

func errAttrs(err error) []any {
	return []any{
		slog.String("error", err.Error()),
		slog.String("error_type", fmt.Sprintf("%T", err)),
	}
}

func (l *opLogger) saveStarted(ctx context.Context, id string, action saveLogAction) {
	l.log.DebugContext(ctx, "saving campaign started",
		slog.String("operation", opSave),
		slog.String("id", id),
		slog.String("action", string(action)),
	)
}

func (l *opLogger) saveFailedRepository(ctx context.Context, id string, err error, action saveLogAction) {
	attrs := []any{
		slog.String("operation", opSave),
		slog.String("id", id),
		slog.String("action", string(action)),
	}
	l.log.ErrorContext(ctx, "saving campaign failed (repository error)", append(attrs, errAttrs(err)...)...)
}

func (l *opLogger) publishSavedFailed(ctx context.Context, id string, err error, action saveLogAction) {
	attrs := []any{
		slog.String("operation", opSave),
		slog.String("id", id),
		slog.String("action", string(action)),
		slog.String("event", savedEventLabel(action)),
	}
	l.log.WarnContext(ctx, "publishing campaign event failed (event bus error)", append(attrs, errAttrs(err)...)...)
}

func (l *opLogger) saveSucceeded(ctx context.Context, id string, action saveLogAction) {
	l.log.InfoContext(ctx, "saving campaign succeeded",
		slog.String("operation", opSave),
		slog.String("id", id),
		slog.String("action", string(action)),
	)
}

func (l *opLogger) deleteStarted(ctx context.Context, id string) {
	l.log.DebugContext(ctx, "deleting campaign started",
		slog.String("operation", opDelete),
		slog.String("id", id),
	)
}

func (l *opLogger) deleteFailedRepository(ctx context.Context, id string, err error) {
	attrs := []any{
		slog.String("operation", opDelete),
		slog.String("id", id),
	}
	l.log.ErrorContext(ctx, "deleting campaign failed (repository error)", append(attrs, errAttrs(err)...)...)
}

func (l *opLogger) publishDeletedFailed(ctx context.Context, id string, err error) {
	attrs := []any{
		slog.String("operation", opDelete),
		slog.String("id", id),
		slog.String("event", CampaignDeleted{}.EventName()),
	}
	l.log.WarnContext(ctx, "publishing campaign event failed (event bus error)", append(attrs, errAttrs(err)...)...)
}

func (l *opLogger) deleteSucceeded(ctx context.Context, id string) {
	l.log.InfoContext(ctx, "deleting campaign succeeded",
		slog.String("operation", opDelete),
		slog.String("id", id),
	)
}

func (l *opLogger) findByIDStarted(ctx context.Context, id string) {
	l.log.DebugContext(ctx, "finding campaign by id started",
		slog.String("operation", opFindByID),
		slog.String("id", id),
	)
}

func (l *opLogger) findByIDFailedRepository(ctx context.Context, id string, err error) {
	attrs := []any{
		slog.String("operation", opFindByID),
		slog.String("id", id),
	}
	l.log.ErrorContext(ctx, "finding campaign by id failed (repository error)", append(attrs, errAttrs(err)...)...)
}

func (l *opLogger) findByIDNotFound(ctx context.Context, id string) {
	l.log.DebugContext(ctx, "finding campaign by id not found",
		slog.String("operation", opFindByID),
		slog.String("id", id),
	)
}

func (l *opLogger) findByIDFailedAssembler(ctx context.Context, rawID any, err error) {
	attrs := []any{
		slog.String("operation", opFindByID),
		slog.Any("id", rawID),
	}
	l.log.ErrorContext(ctx, "finding campaign by id failed (assembler error)", append(attrs, errAttrs(err)...)...)
}

func (l *opLogger) findByIDSucceeded(ctx context.Context, id string) {
	l.log.DebugContext(ctx, "finding campaign by id succeeded",
		slog.String("operation", opFindByID),
		slog.String("id", id),
	)
}

func (l *opLogger) findAllStarted(ctx context.Context) {
	l.log.DebugContext(ctx, "finding campaigns started",
		slog.String("operation", opFindAll),
	)
}

func (l *opLogger) findAllFailedRepository(ctx context.Context, err error) {
	attrs := []any{slog.String("operation", opFindAll)}
	l.log.ErrorContext(ctx, "finding campaigns failed (repository error)", append(attrs, errAttrs(err)...)...)
}

func (l *opLogger) findAllFailedAssembler(ctx context.Context, err error) {
	attrs := []any{slog.String("operation", opFindAll)}
	l.log.ErrorContext(ctx, "finding campaigns failed (assembler error)", append(attrs, errAttrs(err)...)...)
}

func (l *opLogger) findAllSucceeded(ctx context.Context, count int) {
	l.log.DebugContext(ctx, "finding campaigns succeeded",
		slog.String("operation", opFindAll),
		slog.Int("count", count),
	)
}

package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

// UseCase names a tracked service operation.
type UseCase string

const (
	UseCaseLoadLogs       UseCase = "load-logs"
	UseCaseLogSession     UseCase = "log-session"
	UseCaseCreateActivity UseCase = "create-activity"
)

// EventField is a key attached to a use-case event.
type EventField string

const (
	FieldGame          EventField = "game"
	FieldCategory      EventField = "category"
	FieldTotalSessions EventField = "total_sessions"
	FieldDelayMS       EventField = "delay_ms"
	FieldLoaded        EventField = "loaded"
	FieldActivity      EventField = "activity"
)

// EventFields carries per-call details of a use case.
type EventFields map[EventField]any

// UseCaseEvent is emitted once per gaming or activity use case, after it
// returns. OpID is unique per call.
type UseCaseEvent struct {
	UseCase   UseCase
	OpID      string
	StartedAt time.Time
	Duration  time.Duration
	Err       error
	Fields    EventFields
}

// Succeeded reports whether the use case returned without error.
func (e UseCaseEvent) Succeeded() bool { return e.Err == nil }

// UseCaseObserver receives use-case events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes one "use_case" line per logged session,
// created activity or log load to w. Failed calls log at error level.
// A nil writer disables reporting.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []any{
		slog.String("use_case", string(event.UseCase)),
		slog.String("op_id", event.OpID),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Succeeded()),
	}

	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Fields[EventField(k)]))
	}

	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		o.logger.ErrorContext(ctx, "use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// trackUseCase stamps a start time and op id. Call the returned func
// deferred with a pointer to the named error result; fields may be filled
// in until then.
func trackUseCase(ctx context.Context, obs UseCaseObserver, uc UseCase, fields EventFields) func(err *error) {
	startedAt := time.Now().UTC()
	opID := uuid.NewString()
	return func(err *error) {
		var e error
		if err != nil {
			e = *err
		}
		obs.ObserveUseCase(ctx, UseCaseEvent{
			UseCase:   uc,
			OpID:      opID,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Err:       e,
			Fields:    fields,
		})
	}
}

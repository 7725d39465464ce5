package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/alexanderramin/activitylog/internal/form"
	"github.com/alexanderramin/activitylog/internal/repository"
	"github.com/alexanderramin/activitylog/internal/stats"
)

// GamingOptions tunes a GamingService.
type GamingOptions struct {
	LoadDelay             time.Duration
	AllowNegativeDuration bool
	Clock                 func() time.Time
	Logger                *slog.Logger
}

type gamingService struct {
	repo     repository.SessionLogRepo
	opts     GamingOptions
	logger   *slog.Logger
	observer UseCaseObserver

	mu     sync.Mutex
	logs   []domain.SessionLog
	loaded bool
}

func NewGamingService(repo repository.SessionLogRepo, opts GamingOptions, observers ...UseCaseObserver) GamingService {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &gamingService{
		repo:     repo,
		opts:     opts,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *gamingService) Load(ctx context.Context) (logs []domain.SessionLog, err error) {
	fields := EventFields{FieldDelayMS: s.opts.LoadDelay.Milliseconds()}
	defer trackUseCase(ctx, s.observer, UseCaseLoadLogs, fields)(&err)

	if s.opts.LoadDelay > 0 {
		timer := time.NewTimer(s.opts.LoadDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logs = s.Logs(ctx)
	fields[FieldLoaded] = len(logs)
	return logs, nil
}

func (s *gamingService) Logs(ctx context.Context) []domain.SessionLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.snapshot()
}

// ensureLoaded reads the store once per service; later reads come from memory.
// Caller holds s.mu.
func (s *gamingService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.logs = s.repo.Load(ctx)
	s.loaded = true
}

// snapshot copies the cached list. Caller holds s.mu.
func (s *gamingService) snapshot() []domain.SessionLog {
	out := make([]domain.SessionLog, len(s.logs))
	copy(out, s.logs)
	return out
}

func (s *gamingService) NewForm() *form.GameForm {
	return form.New(s.opts.Clock, form.WithAllowNegativeDuration(s.opts.AllowNegativeDuration))
}

func (s *gamingService) LogSession(ctx context.Context, f *form.GameForm) (log domain.SessionLog, err error) {
	fields := EventFields{FieldGame: f.Game(), FieldCategory: string(f.Category())}
	defer trackUseCase(ctx, s.observer, UseCaseLogSession, fields)(&err)

	log, err = f.Compose()
	if err != nil {
		return domain.SessionLog{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	updated, err := s.repo.Append(ctx, s.logs, log)
	if err != nil {
		return domain.SessionLog{}, err
	}
	s.logs = updated
	f.Reset()
	fields[FieldTotalSessions] = len(updated)
	return log, nil
}

func (s *gamingService) Chart(ctx context.Context) []domain.ChartDataItem {
	return stats.AggregateAll(s.Logs(ctx), s.diagnostics(ctx)...)
}

func (s *gamingService) ChartForDate(ctx context.Context, day domain.Day) []domain.ChartDataItem {
	return stats.AggregateForDate(s.Logs(ctx), day, s.diagnostics(ctx)...)
}

func (s *gamingService) Dates(ctx context.Context) []domain.Day {
	return stats.DistinctDates(s.Logs(ctx), s.diagnostics(ctx)...)
}

func (s *gamingService) Overview(ctx context.Context) stats.Overview {
	return stats.OverviewOf(s.Logs(ctx))
}

func (s *gamingService) diagnostics(ctx context.Context) []stats.Option {
	return []stats.Option{
		stats.WithDiagnostics(func(log domain.SessionLog, err error) {
			s.logger.DebugContext(ctx, "counting session with unreadable duration as zero hours",
				"game", log.Game, "duration", log.Duration, "error", err)
		}),
		stats.WithDateDiagnostics(func(log domain.SessionLog, err error) {
			s.logger.DebugContext(ctx, "skipping session with unreadable date",
				"game", log.Game, "date", log.Date, "error", err)
		}),
	}
}

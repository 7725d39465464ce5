package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/alexanderramin/activitylog/internal/registry"
	"github.com/alexanderramin/activitylog/internal/repository"
)

type activityService struct {
	registry *registry.Registry
	repo     repository.ActivityRepo
	observer UseCaseObserver

	mu     sync.Mutex
	custom []domain.ActivityKind
}

// NewActivityService seeds a registry with the built-ins followed by any
// persisted custom activities. Stored entries the registry refuses are
// skipped with a warning. A nil logger uses slog.Default.
func NewActivityService(ctx context.Context, repo repository.ActivityRepo, logger *slog.Logger, observers ...UseCaseObserver) ActivityService {
	if logger == nil {
		logger = slog.Default()
	}
	reg := registry.NewDefault()
	var custom []domain.ActivityKind
	for _, a := range repo.Load(ctx) {
		added, err := reg.Append(a.Title, a.Icon)
		if err != nil {
			logger.WarnContext(ctx, "skipping stored activity", "title", a.Title, "error", err)
			continue
		}
		custom = append(custom, added)
	}
	return &activityService{
		registry: reg,
		repo:     repo,
		observer: useCaseObserverOrNoop(observers),
		custom:   custom,
	}
}

func (s *activityService) List(ctx context.Context) []domain.ActivityKind {
	return s.registry.List()
}

func (s *activityService) Find(ctx context.Context, title string) (domain.ActivityKind, error) {
	a, ok := s.registry.Find(title)
	if !ok {
		return domain.ActivityKind{}, fmt.Errorf("activity %q: %w", title, domain.ErrNotFound)
	}
	return a, nil
}

func (s *activityService) Create(ctx context.Context, title, icon string) (activity domain.ActivityKind, err error) {
	fields := EventFields{FieldActivity: title}
	defer trackUseCase(ctx, s.observer, UseCaseCreateActivity, fields)(&err)

	s.mu.Lock()
	defer s.mu.Unlock()

	activity, err = s.registry.Append(title, icon)
	if err != nil {
		return domain.ActivityKind{}, err
	}
	s.custom = append(s.custom, activity)
	if err = s.repo.Save(ctx, s.custom); err != nil {
		return activity, fmt.Errorf("activity created for this session only: %w", err)
	}
	return activity, nil
}

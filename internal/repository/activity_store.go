package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/alexanderramin/activitylog/internal/kv"
)

// CustomActivitiesKey is the key user-created activities are stored under.
const CustomActivitiesKey = "customActivities"

// ActivityStore persists user-created activities. Built-ins are never stored.
type ActivityStore struct {
	store  kv.Store
	logger *slog.Logger
}

// NewActivityStore creates an ActivityStore. A nil logger uses slog.Default.
func NewActivityStore(store kv.Store, logger *slog.Logger) *ActivityStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityStore{store: store, logger: logger}
}

func (s *ActivityStore) Load(ctx context.Context) []domain.ActivityKind {
	raw, ok, err := s.store.Get(ctx, CustomActivitiesKey)
	if err != nil {
		s.logger.WarnContext(ctx, "reading stored activities", "key", CustomActivitiesKey, "error", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var activities []domain.ActivityKind
	if err := json.Unmarshal([]byte(raw), &activities); err != nil {
		s.logger.WarnContext(ctx, "discarding unparsable stored activities", "key", CustomActivitiesKey, "error", err)
		return nil
	}
	return activities
}

func (s *ActivityStore) Save(ctx context.Context, activities []domain.ActivityKind) error {
	payload, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("encoding activities: %w", err)
	}
	if err := s.store.Set(ctx, CustomActivitiesKey, string(payload)); err != nil {
		return fmt.Errorf("saving activities: %w", err)
	}
	return nil
}

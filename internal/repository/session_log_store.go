package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/alexanderramin/activitylog/internal/kv"
)

// GamingLogsKey is the key the session list is stored under.
const GamingLogsKey = "gamingLogs"

// SessionLogStore keeps the session list as one JSON array in a kv.Store.
// Every append rewrites the whole array; concurrent writers are not detected
// and the last write wins.
type SessionLogStore struct {
	store  kv.Store
	logger *slog.Logger
}

// NewSessionLogStore creates a SessionLogStore. A nil logger uses slog.Default.
func NewSessionLogStore(store kv.Store, logger *slog.Logger) *SessionLogStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionLogStore{store: store, logger: logger}
}

// Load returns the stored sessions. A missing key, a read failure or
// malformed data all yield an empty list.
func (s *SessionLogStore) Load(ctx context.Context) []domain.SessionLog {
	raw, ok, err := s.store.Get(ctx, GamingLogsKey)
	if err != nil {
		s.logger.WarnContext(ctx, "reading stored logs", "key", GamingLogsKey, "error", err)
		return []domain.SessionLog{}
	}
	if !ok || raw == "" {
		return []domain.SessionLog{}
	}

	var logs []domain.SessionLog
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		s.logger.WarnContext(ctx, "discarding unparsable stored logs", "key", GamingLogsKey, "error", err)
		return []domain.SessionLog{}
	}
	if logs == nil {
		logs = []domain.SessionLog{}
	}
	return logs
}

// Append adds log to current, persists the full list and returns it.
// current is not modified.
func (s *SessionLogStore) Append(ctx context.Context, current []domain.SessionLog, log domain.SessionLog) ([]domain.SessionLog, error) {
	updated := make([]domain.SessionLog, 0, len(current)+1)
	updated = append(updated, current...)
	updated = append(updated, log)

	payload, err := json.Marshal(updated)
	if err != nil {
		return nil, fmt.Errorf("encoding session logs: %w", err)
	}
	if err := s.store.Set(ctx, GamingLogsKey, string(payload)); err != nil {
		return nil, fmt.Errorf("saving session logs: %w", err)
	}
	return updated, nil
}

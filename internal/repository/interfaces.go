package repository

import (
	"context"

	"github.com/alexanderramin/activitylog/internal/domain"
)

// SessionLogRepo holds the full list of gaming sessions under one key.
type SessionLogRepo interface {
	Load(ctx context.Context) []domain.SessionLog
	Append(ctx context.Context, current []domain.SessionLog, log domain.SessionLog) ([]domain.SessionLog, error)
}

// ActivityRepo holds user-created activities.
type ActivityRepo interface {
	Load(ctx context.Context) []domain.ActivityKind
	Save(ctx context.Context, activities []domain.ActivityKind) error
}

package service

import (
	"context"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/alexanderramin/activitylog/internal/form"
	"github.com/alexanderramin/activitylog/internal/stats"
)

type GamingService interface {
	// Load waits out the configured delay, then returns the session list.
	// If ctx ends first it returns ctx.Err() and changes nothing.
	Load(ctx context.Context) ([]domain.SessionLog, error)
	Logs(ctx context.Context) []domain.SessionLog
	NewForm() *form.GameForm
	LogSession(ctx context.Context, f *form.GameForm) (domain.SessionLog, error)
	Chart(ctx context.Context) []domain.ChartDataItem
	ChartForDate(ctx context.Context, day domain.Day) []domain.ChartDataItem
	Dates(ctx context.Context) []domain.Day
	Overview(ctx context.Context) stats.Overview
}

type ActivityService interface {
	List(ctx context.Context) []domain.ActivityKind
	Find(ctx context.Context, title string) (domain.ActivityKind, error)
	Create(ctx context.Context, title, icon string) (domain.ActivityKind, error)
}

package ports

import (
	"context"
	"time"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

// DashboardService computes read-only aggregate statistics.
type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	DetailedStats(ctx context.Context) (*domain.DetailedStats, error)
}

// StatsRepository exposes the count and group-by queries behind the
// dashboard. Each method is a single read; the service composes them and
// fails the whole computation on the first error.
type StatsRepository interface {
	CountClients(ctx context.Context) (int64, error)
	CountDevicesByStatus(ctx context.Context, status domain.DeviceStatus) (int64, error)
	CountTicketsByStatus(ctx context.Context, statuses ...domain.TicketStatus) (int64, error)
	CountAssetsByStatus(ctx context.Context, status domain.AssetStatus) (int64, error)
	CountAssetRequestsByStatus(ctx context.Context, status domain.AssetRequestStatus) (int64, error)
	// CountTicketsResolvedSince counts tickets with status "resolved" whose
	// updated_at is at or after since.
	CountTicketsResolvedSince(ctx context.Context, since time.Time) (int64, error)

	DeviceStatusBreakdown(ctx context.Context) ([]domain.BucketCount, error)
	TicketStatusBreakdown(ctx context.Context) ([]domain.BucketCount, error)
	TicketPriorityBreakdown(ctx context.Context) ([]domain.BucketCount, error)
	AssetStatusBreakdown(ctx context.Context) ([]domain.BucketCount, error)
	ClientTypeBreakdown(ctx context.Context) ([]domain.BucketCount, error)
}

// StatsCache is a short-lived cache for computed dashboard reports. A miss is
// (false, nil); cache failures must never fail the dashboard itself.
type StatsCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mercury-msp/helpdesk/internal/api/metrics"
	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

const (
	statsCacheTTL    = 30 * time.Second
	statsCacheKey    = "stats:basic"
	detailedCacheKey = "stats:detailed"
)

// DashboardService computes read-only aggregate counts. Results are cached
// briefly in Redis; cache trouble degrades to a direct computation.
type DashboardService struct {
	repo   ports.StatsRepository
	cache  ports.StatsCache
	logger zerolog.Logger
	now    func() time.Time
}

func NewDashboardService(repo ports.StatsRepository, cache ports.StatsCache, logger zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// Stats returns the six headline counts. The computation is atomic: the
// first failing count aborts the whole call, never a partial mix of real
// and zeroed values. "Resolved today" uses the UTC calendar day and counts
// tickets whose status is "resolved" and whose updated_at is on or after
// midnight UTC.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if s.cache != nil {
		var cached domain.DashboardStats
		if hit, err := s.cache.Get(ctx, statsCacheKey, &cached); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	metrics.DashboardQueriesTotal.WithLabelValues("basic").Inc()
	if s.cache != nil {
		if err := s.cache.Set(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *DashboardService) computeStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	var err error

	if stats.TotalClients, err = s.repo.CountClients(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveDevices, err = s.repo.CountDevicesByStatus(ctx, domain.DeviceActive); err != nil {
		return nil, err
	}
	if stats.OpenTickets, err = s.repo.CountTicketsByStatus(ctx, domain.OpenTicketStatuses...); err != nil {
		return nil, err
	}
	if stats.AvailableAssets, err = s.repo.CountAssetsByStatus(ctx, domain.AssetAvailable); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = s.repo.CountAssetRequestsByStatus(ctx, domain.AssetRequestPending); err != nil {
		return nil, err
	}
	if stats.ResolvedToday, err = s.repo.CountTicketsResolvedSince(ctx, s.startOfToday()); err != nil {
		return nil, err
	}
	return &stats, nil
}

// DetailedStats extends the headline counts with per-dimension breakdowns.
func (s *DashboardService) DetailedStats(ctx context.Context) (*domain.DetailedStats, error) {
	if s.cache != nil {
		var cached domain.DetailedStats
		if hit, err := s.cache.Get(ctx, detailedCacheKey, &cached); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	basic, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	detailed := &domain.DetailedStats{Basic: *basic}
	if detailed.DeviceStatus, err = s.repo.DeviceStatusBreakdown(ctx); err != nil {
		return nil, err
	}
	if detailed.TicketStatus, err = s.repo.TicketStatusBreakdown(ctx); err != nil {
		return nil, err
	}
	if detailed.TicketPriority, err = s.repo.TicketPriorityBreakdown(ctx); err != nil {
		return nil, err
	}
	if detailed.AssetStatus, err = s.repo.AssetStatusBreakdown(ctx); err != nil {
		return nil, err
	}
	if detailed.ClientType, err = s.repo.ClientTypeBreakdown(ctx); err != nil {
		return nil, err
	}

	metrics.DashboardQueriesTotal.WithLabelValues("detailed").Inc()
	if s.cache != nil {
		if err := s.cache.Set(ctx, detailedCacheKey, detailed, statsCacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return detailed, nil
}

// startOfToday is midnight of the current calendar day in UTC.
func (s *DashboardService) startOfToday() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

type stubStatsRepo struct {
	clients        int64
	activeDevices  int64
	openTickets    int64
	assets         int64
	pending        int64
	resolvedToday  int64
	failOn         string
	calls          int
	lastSince      time.Time
	ticketStatuses []domain.TicketStatus
}

var errStatsStore = errors.New("store unavailable")

func (r *stubStatsRepo) CountClients(context.Context) (int64, error) {
	r.calls++
	if r.failOn == "clients" {
		return 0, errStatsStore
	}
	return r.clients, nil
}

func (r *stubStatsRepo) CountDevicesByStatus(_ context.Context, status domain.DeviceStatus) (int64, error) {
	r.calls++
	if r.failOn == "devices" {
		return 0, errStatsStore
	}
	if status != domain.DeviceActive {
		return 0, nil
	}
	return r.activeDevices, nil
}

func (r *stubStatsRepo) CountTicketsByStatus(_ context.Context, statuses ...domain.TicketStatus) (int64, error) {
	r.calls++
	r.ticketStatuses = statuses
	if r.failOn == "tickets" {
		return 0, errStatsStore
	}
	return r.openTickets, nil
}

func (r *stubStatsRepo) CountAssetsByStatus(_ context.Context, status domain.AssetStatus) (int64, error) {
	r.calls++
	if r.failOn == "assets" {
		return 0, errStatsStore
	}
	if status != domain.AssetAvailable {
		return 0, nil
	}
	return r.assets, nil
}

func (r *stubStatsRepo) CountAssetRequestsByStatus(_ context.Context, status domain.AssetRequestStatus) (int64, error) {
	r.calls++
	if r.failOn == "requests" {
		return 0, errStatsStore
	}
	if status != domain.AssetRequestPending {
		return 0, nil
	}
	return r.pending, nil
}

func (r *stubStatsRepo) CountTicketsResolvedSince(_ context.Context, since time.Time) (int64, error) {
	r.calls++
	r.lastSince = since
	if r.failOn == "resolved" {
		return 0, errStatsStore
	}
	return r.resolvedToday, nil
}

func (r *stubStatsRepo) DeviceStatusBreakdown(context.Context) ([]domain.BucketCount, error) {
	return []domain.BucketCount{{Key: "active", Count: r.activeDevices}}, nil
}

func (r *stubStatsRepo) TicketStatusBreakdown(context.Context) ([]domain.BucketCount, error) {
	return []domain.BucketCount{{Key: "open", Count: r.openTickets}}, nil
}

func (r *stubStatsRepo) TicketPriorityBreakdown(context.Context) ([]domain.BucketCount, error) {
	return []domain.BucketCount{{Key: "medium", Count: r.openTickets}}, nil
}

func (r *stubStatsRepo) AssetStatusBreakdown(context.Context) ([]domain.BucketCount, error) {
	return []domain.BucketCount{{Key: "available", Count: r.assets}}, nil
}

func (r *stubStatsRepo) ClientTypeBreakdown(context.Context) ([]domain.BucketCount, error) {
	return []domain.BucketCount{{Key: "managed_site", Count: r.clients}}, nil
}

type stubStatsCache struct {
	entries map[string][]byte
	getErr  error
}

func newStubStatsCache() *stubStatsCache {
	return &stubStatsCache{entries: make(map[string][]byte)}
}

func (c *stubStatsCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *stubStatsCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func TestDashboardService_Stats(t *testing.T) {
	repo := &stubStatsRepo{
		clients:       3,
		activeDevices: 2,
		openTickets:   4,
		assets:        1,
		pending:       2,
		resolvedToday: 1,
	}
	svc := NewDashboardService(repo, newStubStatsCache(), zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}

	want := domain.DashboardStats{
		TotalClients:    3,
		ActiveDevices:   2,
		OpenTickets:     4,
		AvailableAssets: 1,
		PendingRequests: 2,
		ResolvedToday:   1,
	}
	if *stats != want {
		t.Fatalf("unexpected stats: got %+v, want %+v", *stats, want)
	}
	if len(repo.ticketStatuses) != 3 {
		t.Fatalf("expected open tickets to span 3 statuses, got %v", repo.ticketStatuses)
	}
}

func TestDashboardService_Stats_AbortsOnFirstError(t *testing.T) {
	repo := &stubStatsRepo{failOn: "assets"}
	svc := NewDashboardService(repo, newStubStatsCache(), zerolog.Nop())

	if _, err := svc.Stats(context.Background()); !errors.Is(err, errStatsStore) {
		t.Fatalf("expected store error, got %v", err)
	}
	// clients, devices, tickets, then the failing assets count. Nothing after.
	if repo.calls != 4 {
		t.Fatalf("expected 4 repo calls before abort, got %d", repo.calls)
	}
}

func TestDashboardService_Stats_ResolvedTodayBoundary(t *testing.T) {
	repo := &stubStatsRepo{}
	svc := NewDashboardService(repo, newStubStatsCache(), zerolog.Nop())
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 14, 23, 55, 0, 0, time.FixedZone("UTC+5", 5*3600))
	}

	if _, err := svc.Stats(context.Background()); err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}

	// 23:55 at UTC+5 is 18:55 UTC, so "today" starts at midnight UTC of the
	// same calendar day.
	want := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !repo.lastSince.Equal(want) {
		t.Fatalf("expected since %v, got %v", want, repo.lastSince)
	}
}

func TestDashboardService_Stats_CacheHit(t *testing.T) {
	repo := &stubStatsRepo{clients: 3}
	cache := newStubStatsCache()
	svc := NewDashboardService(repo, cache, zerolog.Nop())

	if _, err := svc.Stats(context.Background()); err != nil {
		t.Fatalf("first Stats returned error: %v", err)
	}
	calls := repo.calls

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("second Stats returned error: %v", err)
	}
	if repo.calls != calls {
		t.Fatalf("expected cached result, repo was queried again")
	}
	if stats.TotalClients != 3 {
		t.Fatalf("unexpected cached stats: %+v", stats)
	}
}

func TestDashboardService_Stats_CacheFailureDegrades(t *testing.T) {
	repo := &stubStatsRepo{clients: 7}
	cache := newStubStatsCache()
	cache.getErr = errors.New("redis down")
	svc := NewDashboardService(repo, cache, zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.TotalClients != 7 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestDashboardService_DetailedStats(t *testing.T) {
	repo := &stubStatsRepo{clients: 3, activeDevices: 2, openTickets: 4, assets: 1}
	svc := NewDashboardService(repo, newStubStatsCache(), zerolog.Nop())

	detailed, err := svc.DetailedStats(context.Background())
	if err != nil {
		t.Fatalf("DetailedStats returned error: %v", err)
	}
	if detailed.Basic.TotalClients != 3 {
		t.Fatalf("unexpected basic stats: %+v", detailed.Basic)
	}
	if len(detailed.DeviceStatus) == 0 || detailed.DeviceStatus[0].Key != "active" {
		t.Fatalf("unexpected device breakdown: %+v", detailed.DeviceStatus)
	}
	if len(detailed.ClientType) == 0 || detailed.ClientType[0].Count != 3 {
		t.Fatalf("unexpected client type breakdown: %+v", detailed.ClientType)
	}
}

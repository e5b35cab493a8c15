package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

type stubAssetRepo struct {
	assets map[string]*domain.Asset
}

func newStubAssetRepo() *stubAssetRepo {
	return &stubAssetRepo{assets: make(map[string]*domain.Asset)}
}

func (r *stubAssetRepo) FindByID(_ context.Context, id string) (*domain.Asset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAssetRepo) FindByTag(_ context.Context, tag string) (*domain.Asset, error) {
	for _, a := range r.assets {
		if a.Tag == tag {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAssetNotFound
}

func (r *stubAssetRepo) List(_ context.Context, status domain.AssetStatus) ([]domain.Asset, error) {
	out := []domain.Asset{}
	for _, a := range r.assets {
		if status == "" || a.Status == status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAssetRepo) Create(_ context.Context, asset *domain.Asset) error {
	clone := *asset
	r.assets[asset.ID] = &clone
	return nil
}

func (r *stubAssetRepo) Update(_ context.Context, asset *domain.Asset) error {
	if _, ok := r.assets[asset.ID]; !ok {
		return domain.ErrAssetNotFound
	}
	clone := *asset
	r.assets[asset.ID] = &clone
	return nil
}

func (r *stubAssetRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.assets[id]; !ok {
		return domain.ErrAssetNotFound
	}
	delete(r.assets, id)
	return nil
}

type stubAssetRequestRepo struct {
	requests map[string]*domain.AssetRequest
}

func newStubAssetRequestRepo() *stubAssetRequestRepo {
	return &stubAssetRequestRepo{requests: make(map[string]*domain.AssetRequest)}
}

func (r *stubAssetRequestRepo) FindByID(_ context.Context, id string) (*domain.AssetRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrAssetRequestNotFound
	}
	clone := *req
	return &clone, nil
}

func (r *stubAssetRequestRepo) List(_ context.Context, filter ports.AssetRequestFilter) ([]domain.AssetRequest, error) {
	out := []domain.AssetRequest{}
	for _, req := range r.requests {
		if filter.RequestedBy != "" && req.RequestedBy != filter.RequestedBy {
			continue
		}
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func (r *stubAssetRequestRepo) Create(_ context.Context, request *domain.AssetRequest) error {
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *stubAssetRequestRepo) Update(_ context.Context, request *domain.AssetRequest) error {
	if _, ok := r.requests[request.ID]; !ok {
		return domain.ErrAssetRequestNotFound
	}
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *stubAssetRequestRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.requests[id]; !ok {
		return domain.ErrAssetRequestNotFound
	}
	delete(r.requests, id)
	return nil
}

func newTestAssetService(notifier ports.Notifier) (*AssetService, *stubAssetRepo, *stubAssetRequestRepo) {
	assets := newStubAssetRepo()
	requests := newStubAssetRequestRepo()
	return NewAssetService(assets, requests, notifier, zerolog.Nop()), assets, requests
}

func TestAssetService_Create_DuplicateTag(t *testing.T) {
	svc, _, _ := newTestAssetService(&recordingNotifier{})

	input := ports.CreateAssetInput{Tag: "LAP-001", AssetType: domain.AssetLaptop}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrAssetTagTaken) {
		t.Fatalf("expected ErrAssetTagTaken, got %v", err)
	}
}

func TestAssetService_Create_DefaultsToAvailable(t *testing.T) {
	svc, _, _ := newTestAssetService(&recordingNotifier{})

	asset, err := svc.Create(context.Background(), ports.CreateAssetInput{Tag: "MON-001", AssetType: domain.AssetMonitor})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if asset.Status != domain.AssetAvailable {
		t.Fatalf("expected status available, got %q", asset.Status)
	}
}

func TestAssetService_ReviewRequest_Approve(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, _, _ := newTestAssetService(notifier)

	request, err := svc.CreateRequest(context.Background(), ports.CreateAssetRequestInput{
		RequestedBy: "user-1",
		RequestType: domain.AssetRequestAssignment,
		Reason:      "replacement laptop",
	})
	if err != nil {
		t.Fatalf("CreateRequest returned error: %v", err)
	}
	if request.Status != domain.AssetRequestPending {
		t.Fatalf("expected status pending, got %q", request.Status)
	}

	reviewed, err := svc.ReviewRequest(context.Background(), request.ID, true)
	if err != nil {
		t.Fatalf("ReviewRequest returned error: %v", err)
	}
	if reviewed.Status != domain.AssetRequestApproved {
		t.Fatalf("expected status approved, got %q", reviewed.Status)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].UserID != "user-1" {
		t.Fatalf("expected the requester to be notified, got %v", notifier.sent)
	}
}

func TestAssetService_ReviewRequest_Reject(t *testing.T) {
	svc, _, _ := newTestAssetService(&recordingNotifier{})

	request, err := svc.CreateRequest(context.Background(), ports.CreateAssetRequestInput{
		RequestedBy: "user-1",
		RequestType: domain.AssetRequestMaintenance,
		Reason:      "cracked screen",
	})
	if err != nil {
		t.Fatalf("CreateRequest returned error: %v", err)
	}

	reviewed, err := svc.ReviewRequest(context.Background(), request.ID, false)
	if err != nil {
		t.Fatalf("ReviewRequest returned error: %v", err)
	}
	if reviewed.Status != domain.AssetRequestRejected {
		t.Fatalf("expected status rejected, got %q", reviewed.Status)
	}
}

func TestAssetService_ReviewRequest_AlreadySettled(t *testing.T) {
	svc, _, _ := newTestAssetService(&recordingNotifier{})

	request, err := svc.CreateRequest(context.Background(), ports.CreateAssetRequestInput{
		RequestedBy: "user-1",
		RequestType: domain.AssetRequestAssignment,
		Reason:      "new hire",
	})
	if err != nil {
		t.Fatalf("CreateRequest returned error: %v", err)
	}
	if _, err := svc.ReviewRequest(context.Background(), request.ID, true); err != nil {
		t.Fatalf("first review returned error: %v", err)
	}

	if _, err := svc.ReviewRequest(context.Background(), request.ID, false); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for re-review, got %v", err)
	}
}

func TestAssetService_CreateRequest_UnknownAsset(t *testing.T) {
	svc, _, _ := newTestAssetService(&recordingNotifier{})

	_, err := svc.CreateRequest(context.Background(), ports.CreateAssetRequestInput{
		AssetID:     "ghost",
		RequestedBy: "user-1",
		RequestType: domain.AssetRequestMaintenance,
		Reason:      "broken",
	})
	if !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}

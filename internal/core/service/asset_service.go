package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

// AssetService implements company asset inventory and the request/review flow.
type AssetService struct {
	assets   ports.AssetRepository
	requests ports.AssetRequestRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewAssetService(assets ports.AssetRepository, requests ports.AssetRequestRepository, notifier ports.Notifier, logger zerolog.Logger) *AssetService {
	return &AssetService{assets: assets, requests: requests, notifier: notifier, logger: logger}
}

func (s *AssetService) List(ctx context.Context, status domain.AssetStatus) ([]domain.Asset, error) {
	return s.assets.List(ctx, status)
}

func (s *AssetService) Get(ctx context.Context, id string) (*domain.Asset, error) {
	return s.assets.FindByID(ctx, id)
}

func (s *AssetService) Create(ctx context.Context, input ports.CreateAssetInput) (*domain.Asset, error) {
	if input.Tag == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.assets.FindByTag(ctx, input.Tag); err == nil {
		return nil, domain.ErrAssetTagTaken
	} else if !errors.Is(err, domain.ErrAssetNotFound) {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.AssetAvailable
	}

	asset := &domain.Asset{
		ID:              uuid.NewString(),
		Tag:             input.Tag,
		AssetType:       input.AssetType,
		Description:     input.Description,
		Location:        input.Location,
		Status:          status,
		AssignedTo:      input.AssignedTo,
		LastMaintenance: input.LastMaintenance,
	}
	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, err
	}

	s.logger.Info().Str("asset_tag", asset.Tag).Str("asset_type", string(asset.AssetType)).Msg("asset registered")
	return asset, nil
}

func (s *AssetService) Update(ctx context.Context, id string, input ports.UpdateAssetInput) (*domain.Asset, error) {
	asset, err := s.assets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AssetType != nil {
		asset.AssetType = *input.AssetType
	}
	if input.Description != nil {
		asset.Description = *input.Description
	}
	if input.Location != nil {
		asset.Location = *input.Location
	}
	if input.Status != nil {
		asset.Status = *input.Status
	}
	if input.AssignedTo != nil {
		asset.AssignedTo = *input.AssignedTo
	}
	if input.LastMaintenance != nil {
		asset.LastMaintenance = input.LastMaintenance
	}

	if err := s.assets.Update(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *AssetService) Delete(ctx context.Context, id string) error {
	return s.assets.Delete(ctx, id)
}

func (s *AssetService) ListRequests(ctx context.Context, filter ports.AssetRequestFilter) ([]domain.AssetRequest, error) {
	return s.requests.List(ctx, filter)
}

func (s *AssetService) GetRequest(ctx context.Context, id string) (*domain.AssetRequest, error) {
	return s.requests.FindByID(ctx, id)
}

func (s *AssetService) CreateRequest(ctx context.Context, input ports.CreateAssetRequestInput) (*domain.AssetRequest, error) {
	if input.RequestedBy == "" || input.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.AssetID != "" {
		if _, err := s.assets.FindByID(ctx, input.AssetID); err != nil {
			return nil, err
		}
	}

	request := &domain.AssetRequest{
		ID:          uuid.NewString(),
		AssetID:     input.AssetID,
		RequestedBy: input.RequestedBy,
		RequestType: input.RequestType,
		Reason:      input.Reason,
		Status:      domain.AssetRequestPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// ReviewRequest settles a pending request and notifies the requester of the
// decision. Re-reviewing a settled request is rejected as invalid input.
func (s *AssetService) ReviewRequest(ctx context.Context, id string, approve bool) (*domain.AssetRequest, error) {
	request, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.AssetRequestPending {
		return nil, domain.ErrInvalidInput
	}

	decision := domain.AssetRequestRejected
	if approve {
		decision = domain.AssetRequestApproved
	}
	request.Status = decision

	if err := s.requests.Update(ctx, request); err != nil {
		return nil, err
	}

	s.notifier.Notify(ports.NotificationInput{
		UserID:   request.RequestedBy,
		Title:    "Asset request reviewed",
		Message:  fmt.Sprintf("Your %s request has been %s.", request.RequestType, decision),
		Audience: domain.NotifyUser,
	})
	return request, nil
}

func (s *AssetService) DeleteRequest(ctx context.Context, id string) error {
	return s.requests.Delete(ctx, id)
}

package ports

import (
	"context"
	"time"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

// CreateAssetInput carries the fields needed to register a company asset.
type CreateAssetInput struct {
	Tag             string
	AssetType       domain.AssetType
	Description     string
	Location        string
	Status          domain.AssetStatus
	AssignedTo      string
	LastMaintenance *time.Time
}

// UpdateAssetInput carries a partial asset update. Nil fields are left as-is.
type UpdateAssetInput struct {
	AssetType       *domain.AssetType
	Description     *string
	Location        *string
	Status          *domain.AssetStatus
	AssignedTo      *string
	LastMaintenance *time.Time
}

// AssetRequestFilter narrows asset request listings.
type AssetRequestFilter struct {
	RequestedBy string
	Status      domain.AssetRequestStatus
}

// CreateAssetRequestInput carries the fields needed to file an asset request.
type CreateAssetRequestInput struct {
	AssetID     string
	RequestedBy string
	RequestType domain.AssetRequestType
	Reason      string
}

// AssetService defines use-case operations for company assets and the
// requests filed against them.
type AssetService interface {
	List(ctx context.Context, status domain.AssetStatus) ([]domain.Asset, error)
	Get(ctx context.Context, id string) (*domain.Asset, error)
	Create(ctx context.Context, input CreateAssetInput) (*domain.Asset, error)
	Update(ctx context.Context, id string, input UpdateAssetInput) (*domain.Asset, error)
	Delete(ctx context.Context, id string) error

	ListRequests(ctx context.Context, filter AssetRequestFilter) ([]domain.AssetRequest, error)
	GetRequest(ctx context.Context, id string) (*domain.AssetRequest, error)
	CreateRequest(ctx context.Context, input CreateAssetRequestInput) (*domain.AssetRequest, error)
	// ReviewRequest approves or rejects a pending request and notifies the
	// requester of the decision.
	ReviewRequest(ctx context.Context, id string, approve bool) (*domain.AssetRequest, error)
	DeleteRequest(ctx context.Context, id string) error
}

// AssetRepository defines persistence operations for company assets.
type AssetRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Asset, error)
	FindByTag(ctx context.Context, tag string) (*domain.Asset, error)
	List(ctx context.Context, status domain.AssetStatus) ([]domain.Asset, error)
	Create(ctx context.Context, asset *domain.Asset) error
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id string) error
}

// AssetRequestRepository defines persistence operations for asset requests.
type AssetRequestRepository interface {
	FindByID(ctx context.Context, id string) (*domain.AssetRequest, error)
	List(ctx context.Context, filter AssetRequestFilter) ([]domain.AssetRequest, error)
	Create(ctx context.Context, request *domain.AssetRequest) error
	Update(ctx context.Context, request *domain.AssetRequest) error
	Delete(ctx context.Context, id string) error
}

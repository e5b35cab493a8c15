package ports

import (
	"context"
	"time"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

// DeviceFilter narrows device listings. Empty fields apply no filter.
type DeviceFilter struct {
	ClientID string
	Status   domain.DeviceStatus
}

// CreateDeviceInput carries the fields needed to register a device.
type CreateDeviceInput struct {
	ClientID       string
	DeviceCode     string
	DeviceType     domain.DeviceType
	Manufacturer   string
	Model          string
	SerialNumber   string
	PurchaseDate   time.Time
	WarrantyExpiry time.Time
	Status         domain.DeviceStatus
	Location       string
	Notes          string
}

// UpdateDeviceInput carries a partial device update. Nil fields are left as-is.
type UpdateDeviceInput struct {
	DeviceCode     *string
	DeviceType     *domain.DeviceType
	Manufacturer   *string
	Model          *string
	SerialNumber   *string
	PurchaseDate   *time.Time
	WarrantyExpiry *time.Time
	Status         *domain.DeviceStatus
	Location       *string
	Notes          *string
}

// DeviceService defines use-case operations for managed devices.
type DeviceService interface {
	List(ctx context.Context, filter DeviceFilter) ([]domain.Device, error)
	Get(ctx context.Context, id string) (*domain.Device, error)
	Create(ctx context.Context, input CreateDeviceInput) (*domain.Device, error)
	Update(ctx context.Context, id string, input UpdateDeviceInput) (*domain.Device, error)
	Delete(ctx context.Context, id string) error
}

// DeviceRepository defines persistence operations for devices.
type DeviceRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Device, error)
	List(ctx context.Context, filter DeviceFilter) ([]domain.Device, error)
	Create(ctx context.Context, device *domain.Device) error
	Update(ctx context.Context, device *domain.Device) error
	Delete(ctx context.Context, id string) error
}

package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

// DeviceService implements management of client devices.
type DeviceService struct {
	repo    ports.DeviceRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewDeviceService(repo ports.DeviceRepository, clients ports.ClientRepository, logger zerolog.Logger) *DeviceService {
	return &DeviceService{repo: repo, clients: clients, logger: logger}
}

func (s *DeviceService) List(ctx context.Context, filter ports.DeviceFilter) ([]domain.Device, error) {
	return s.repo.List(ctx, filter)
}

func (s *DeviceService) Get(ctx context.Context, id string) (*domain.Device, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DeviceService) Create(ctx context.Context, input ports.CreateDeviceInput) (*domain.Device, error) {
	if input.ClientID == "" || input.DeviceCode == "" {
		return nil, domain.ErrInvalidInput
	}

	// The owning client must exist; devices are never orphaned.
	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.DeviceActive
	}

	device := &domain.Device{
		ID:             uuid.NewString(),
		ClientID:       input.ClientID,
		DeviceCode:     input.DeviceCode,
		DeviceType:     input.DeviceType,
		Manufacturer:   input.Manufacturer,
		Model:          input.Model,
		SerialNumber:   input.SerialNumber,
		PurchaseDate:   input.PurchaseDate,
		WarrantyExpiry: input.WarrantyExpiry,
		Status:         status,
		Location:       input.Location,
		Notes:          input.Notes,
	}
	if err := s.repo.Create(ctx, device); err != nil {
		return nil, err
	}

	s.logger.Info().Str("device_id", device.ID).Str("client_id", device.ClientID).Msg("device registered")
	return device, nil
}

func (s *DeviceService) Update(ctx context.Context, id string, input ports.UpdateDeviceInput) (*domain.Device, error) {
	device, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DeviceCode != nil {
		device.DeviceCode = *input.DeviceCode
	}
	if input.DeviceType != nil {
		device.DeviceType = *input.DeviceType
	}
	if input.Manufacturer != nil {
		device.Manufacturer = *input.Manufacturer
	}
	if input.Model != nil {
		device.Model = *input.Model
	}
	if input.SerialNumber != nil {
		device.SerialNumber = *input.SerialNumber
	}
	if input.PurchaseDate != nil {
		device.PurchaseDate = *input.PurchaseDate
	}
	if input.WarrantyExpiry != nil {
		device.WarrantyExpiry = *input.WarrantyExpiry
	}
	if input.Status != nil {
		device.Status = *input.Status
	}
	if input.Location != nil {
		device.Location = *input.Location
	}
	if input.Notes != nil {
		device.Notes = *input.Notes
	}

	if err := s.repo.Update(ctx, device); err != nil {
		return nil, err
	}
	return device, nil
}

func (s *DeviceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

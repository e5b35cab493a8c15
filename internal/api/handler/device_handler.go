package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

// dateFormat is the wire format for calendar dates (purchase, warranty).
const dateFormat = "2006-01-02"

// DeviceHandler exposes CRUD for client devices.
type DeviceHandler struct {
	deviceService ports.DeviceService
}

func NewDeviceHandler(deviceService ports.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

type createDeviceRequest struct {
	ClientID       string `json:"client_id" validate:"required"`
	DeviceCode     string `json:"device_code" validate:"required"`
	DeviceType     string `json:"device_type" validate:"required,oneof=PC Server Network CCTV Printer Other"`
	Manufacturer   string `json:"manufacturer" validate:"required"`
	Model          string `json:"model" validate:"required"`
	SerialNumber   string `json:"serial_number" validate:"required"`
	PurchaseDate   string `json:"purchase_date" validate:"required"`
	WarrantyExpiry string `json:"warranty_expiry" validate:"required"`
	Status         string `json:"status" validate:"omitempty,oneof=active in_repair retired maintenance"`
	Location       string `json:"location" validate:"required"`
	Notes          string `json:"notes"`
}

type updateDeviceRequest struct {
	DeviceCode     *string `json:"device_code"`
	DeviceType     *string `json:"device_type" validate:"omitempty,oneof=PC Server Network CCTV Printer Other"`
	Manufacturer   *string `json:"manufacturer"`
	Model          *string `json:"model"`
	SerialNumber   *string `json:"serial_number"`
	PurchaseDate   *string `json:"purchase_date"`
	WarrantyExpiry *string `json:"warranty_expiry"`
	Status         *string `json:"status" validate:"omitempty,oneof=active in_repair retired maintenance"`
	Location       *string `json:"location"`
	Notes          *string `json:"notes"`
}

func (h *DeviceHandler) List(c echo.Context) error {
	filter := ports.DeviceFilter{
		ClientID: c.QueryParam("client_id"),
		Status:   domain.DeviceStatus(c.QueryParam("status")),
	}
	devices, err := h.deviceService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, devices)
}

func (h *DeviceHandler) Get(c echo.Context) error {
	device, err := h.deviceService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, device)
}

func (h *DeviceHandler) Create(c echo.Context) error {
	var req createDeviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	purchase, err := parseDate(req.PurchaseDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "purchase_date must be YYYY-MM-DD")
	}
	warranty, err := parseDate(req.WarrantyExpiry)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "warranty_expiry must be YYYY-MM-DD")
	}

	device, err := h.deviceService.Create(c.Request().Context(), ports.CreateDeviceInput{
		ClientID:       req.ClientID,
		DeviceCode:     req.DeviceCode,
		DeviceType:     domain.DeviceType(req.DeviceType),
		Manufacturer:   req.Manufacturer,
		Model:          req.Model,
		SerialNumber:   req.SerialNumber,
		PurchaseDate:   purchase,
		WarrantyExpiry: warranty,
		Status:         domain.DeviceStatus(req.Status),
		Location:       req.Location,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, device)
}

func (h *DeviceHandler) Update(c echo.Context) error {
	var req updateDeviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateDeviceInput{
		DeviceCode:   req.DeviceCode,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		Location:     req.Location,
		Notes:        req.Notes,
	}
	if req.DeviceType != nil {
		t := domain.DeviceType(*req.DeviceType)
		input.DeviceType = &t
	}
	if req.Status != nil {
		s := domain.DeviceStatus(*req.Status)
		input.Status = &s
	}
	if req.PurchaseDate != nil {
		d, err := parseDate(*req.PurchaseDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "purchase_date must be YYYY-MM-DD")
		}
		input.PurchaseDate = &d
	}
	if req.WarrantyExpiry != nil {
		d, err := parseDate(*req.WarrantyExpiry)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "warranty_expiry must be YYYY-MM-DD")
		}
		input.WarrantyExpiry = &d
	}

	device, err := h.deviceService.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, device)
}

func (h *DeviceHandler) Delete(c echo.Context) error {
	if err := h.deviceService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateFormat, s)
}

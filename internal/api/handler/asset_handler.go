package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

// AssetHandler exposes company asset inventory and the request/review flow.
type AssetHandler struct {
	assetService ports.AssetService
}

func NewAssetHandler(assetService ports.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

type createAssetRequest struct {
	Tag             string `json:"asset_tag" validate:"required"`
	AssetType       string `json:"asset_type" validate:"required,oneof=Laptop Desktop Monitor Network_Equipment Tool Other"`
	Description     string `json:"description" validate:"required"`
	Location        string `json:"location" validate:"required"`
	Status          string `json:"status" validate:"omitempty,oneof=available assigned_to_tech on_loan_to_client maintenance"`
	AssignedTo      string `json:"assigned_to"`
	LastMaintenance string `json:"last_maintenance"`
}

type updateAssetRequest struct {
	AssetType       *string `json:"asset_type" validate:"omitempty,oneof=Laptop Desktop Monitor Network_Equipment Tool Other"`
	Description     *string `json:"description"`
	Location        *string `json:"location"`
	Status          *string `json:"status" validate:"omitempty,oneof=available assigned_to_tech on_loan_to_client maintenance"`
	AssignedTo      *string `json:"assigned_to"`
	LastMaintenance *string `json:"last_maintenance"`
}

type createAssetRequestRequest struct {
	AssetID     string `json:"asset_id"`
	RequestType string `json:"request_type" validate:"required,oneof=assignment modification maintenance"`
	Reason      string `json:"reason" validate:"required"`
}

type reviewAssetRequestRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

func (h *AssetHandler) List(c echo.Context) error {
	assets, err := h.assetService.List(c.Request().Context(), domain.AssetStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assets)
}

func (h *AssetHandler) Get(c echo.Context) error {
	asset, err := h.assetService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) Create(c echo.Context) error {
	var req createAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateAssetInput{
		Tag:         req.Tag,
		AssetType:   domain.AssetType(req.AssetType),
		Description: req.Description,
		Location:    req.Location,
		Status:      domain.AssetStatus(req.Status),
		AssignedTo:  req.AssignedTo,
	}
	if req.LastMaintenance != "" {
		d, err := parseDate(req.LastMaintenance)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "last_maintenance must be YYYY-MM-DD")
		}
		input.LastMaintenance = &d
	}

	asset, err := h.assetService.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, asset)
}

func (h *AssetHandler) Update(c echo.Context) error {
	var req updateAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateAssetInput{
		Description: req.Description,
		Location:    req.Location,
		AssignedTo:  req.AssignedTo,
	}
	if req.AssetType != nil {
		t := domain.AssetType(*req.AssetType)
		input.AssetType = &t
	}
	if req.Status != nil {
		s := domain.AssetStatus(*req.Status)
		input.Status = &s
	}
	if req.LastMaintenance != nil {
		d, err := parseDate(*req.LastMaintenance)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "last_maintenance must be YYYY-MM-DD")
		}
		input.LastMaintenance = &d
	}

	asset, err := h.assetService.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) Delete(c echo.Context) error {
	if err := h.assetService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListRequests returns asset requests. Non-admin users only see their own.
func (h *AssetHandler) ListRequests(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	filter := ports.AssetRequestFilter{
		RequestedBy: c.QueryParam("requested_by"),
		Status:      domain.AssetRequestStatus(c.QueryParam("status")),
	}
	if user.Role != domain.RoleAdmin {
		filter.RequestedBy = user.ID
	}

	requests, err := h.assetService.ListRequests(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *AssetHandler) CreateRequest(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createAssetRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.assetService.CreateRequest(c.Request().Context(), ports.CreateAssetRequestInput{
		AssetID:     req.AssetID,
		RequestedBy: user.ID,
		RequestType: domain.AssetRequestType(req.RequestType),
		Reason:      req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, request)
}

func (h *AssetHandler) ReviewRequest(c echo.Context) error {
	var req reviewAssetRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.assetService.ReviewRequest(c.Request().Context(), c.Param("id"), req.Decision == "approved")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

func (h *AssetHandler) DeleteRequest(c echo.Context) error {
	if err := h.assetService.DeleteRequest(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

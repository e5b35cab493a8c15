package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

// TicketHandler exposes the service request workflow.
type TicketHandler struct {
	ticketService ports.TicketService
}

func NewTicketHandler(ticketService ports.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

type createTicketRequest struct {
	ClientID    string `json:"client_id" validate:"required"`
	DeviceID    string `json:"device_id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type updateTicketRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Status          *string `json:"status" validate:"omitempty,oneof=open assigned in_progress resolved closed"`
	Priority        *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DeviceID        *string `json:"device_id"`
	ResolutionNotes *string `json:"resolution_notes"`
}

type assignTicketRequest struct {
	TechnicianID string `json:"technician_id" validate:"required"`
}

// List returns tickets filtered by the query parameters. Clients only see
// their own submissions regardless of the filters they send.
func (h *TicketHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	filter := ports.TicketFilter{
		ClientID:   c.QueryParam("client_id"),
		AssignedTo: c.QueryParam("assigned_to"),
		Status:     domain.TicketStatus(c.QueryParam("status")),
		Priority:   domain.TicketPriority(c.QueryParam("priority")),
	}
	if user.Role == domain.RoleClient {
		filter.SubmittedBy = user.ID
	}

	tickets, err := h.ticketService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) Get(c echo.Context) error {
	ticket, err := h.ticketService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) GetByNumber(c echo.Context) error {
	ticket, err := h.ticketService.GetByNumber(c.Request().Context(), c.Param("number"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.ticketService.Create(c.Request().Context(), ports.CreateTicketInput{
		ClientID:    req.ClientID,
		DeviceID:    req.DeviceID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TicketPriority(req.Priority),
		SubmittedBy: user.ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ticket)
}

func (h *TicketHandler) Update(c echo.Context) error {
	var req updateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateTicketInput{
		Title:           req.Title,
		Description:     req.Description,
		DeviceID:        req.DeviceID,
		ResolutionNotes: req.ResolutionNotes,
	}
	if req.Status != nil {
		s := domain.TicketStatus(*req.Status)
		input.Status = &s
	}
	if req.Priority != nil {
		p := domain.TicketPriority(*req.Priority)
		input.Priority = &p
	}

	ticket, err := h.ticketService.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) Assign(c echo.Context) error {
	var req assignTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.ticketService.Assign(c.Request().Context(), c.Param("id"), req.TechnicianID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) Delete(c echo.Context) error {
	if err := h.ticketService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

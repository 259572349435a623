package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// OrganizationHandler serves the clinic owner portal.
type OrganizationHandler struct {
	org       ports.OrganizationService
	dashboard ports.DashboardService
	log       zerolog.Logger
}

func NewOrganizationHandler(org ports.OrganizationService, dashboard ports.DashboardService, log zerolog.Logger) *OrganizationHandler {
	return &OrganizationHandler{org: org, dashboard: dashboard, log: log}
}

// Stats godoc
// @Summary  Clinic-wide aggregates for the owner dashboard
// @Tags     organization
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} ports.OrganizationStats
// @Router   /organization/stats [get]
func (h *OrganizationHandler) Stats(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	stats, err := h.dashboard.Organization(c.Request().Context(), cl.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Doctors godoc
// @Summary  Clinic doctor roster with verification state
// @Tags     organization
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} ports.OrganizationRosterDoctor
// @Router   /organization/doctors [get]
func (h *OrganizationHandler) Doctors(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	roster, err := h.org.Doctors(c.Request().Context(), cl.UserID)
	if err != nil {
		return err
	}
	if roster == nil {
		roster = []ports.OrganizationRosterDoctor{}
	}
	return c.JSON(http.StatusOK, roster)
}

type updateLocationRequest struct {
	Address string  `json:"address" validate:"required"`
	Pincode string  `json:"pincode" validate:"required"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// UpdateLocation godoc
// @Summary  Stage a clinic address change for admin re-approval
// @Tags     organization
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    request body updateLocationRequest true "New location"
// @Success  200 {object} map[string]string
// @Router   /organization/location [put]
func (h *OrganizationHandler) UpdateLocation(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	loc := domain.Location{
		Address:     req.Address,
		Pincode:     req.Pincode,
		Coordinates: domain.Coordinates{Lat: req.Lat, Lng: req.Lng},
	}
	if err := h.org.UpdateLocation(c.Request().Context(), cl.UserID, loc); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "location change submitted for approval"})
}

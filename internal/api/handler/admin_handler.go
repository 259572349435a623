package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/core/ports"
)

// AdminHandler serves the account approval workflow.
type AdminHandler struct {
	admin ports.AdminService
	log   zerolog.Logger
}

func NewAdminHandler(admin ports.AdminService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, log: log}
}

// PendingVerifications godoc
// @Summary  Accounts awaiting admin review
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} ports.PendingVerification
// @Router   /admin/pending-verifications [get]
func (h *AdminHandler) PendingVerifications(c echo.Context) error {
	pending, err := h.admin.PendingVerifications(c.Request().Context())
	if err != nil {
		return err
	}
	if pending == nil {
		pending = []ports.PendingVerification{}
	}
	return c.JSON(http.StatusOK, pending)
}

// Approve godoc
// @Summary  Approve a pending doctor or clinic
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Param    id   path  string true "Entity id"
// @Param    type query string true "organization | doctor"
// @Success  200 {object} map[string]string
// @Failure  404 {object} errorResponse
// @Router   /admin/approve-account/{id} [post]
func (h *AdminHandler) Approve(c echo.Context) error {
	entityType := c.QueryParam("type")
	if entityType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "type query parameter is required")
	}
	if err := h.admin.Approve(c.Request().Context(), c.Param("id"), entityType); err != nil {
		return err
	}
	h.log.Info().Str("entity_id", c.Param("id")).Str("type", entityType).Msg("account approved")
	return c.JSON(http.StatusOK, map[string]string{"message": "account approved"})
}

// Reject godoc
// @Summary  Reject a pending doctor or clinic
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Param    id   path  string true "Entity id"
// @Param    type query string true "organization | doctor"
// @Success  200 {object} map[string]string
// @Failure  404 {object} errorResponse
// @Router   /admin/reject-account/{id} [post]
func (h *AdminHandler) Reject(c echo.Context) error {
	entityType := c.QueryParam("type")
	if entityType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "type query parameter is required")
	}
	if err := h.admin.Reject(c.Request().Context(), c.Param("id"), entityType); err != nil {
		return err
	}
	h.log.Info().Str("entity_id", c.Param("id")).Str("type", entityType).Msg("account rejected")
	return c.JSON(http.StatusOK, map[string]string{"message": "account rejected"})
}

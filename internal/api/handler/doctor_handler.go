package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/api/metrics"
	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// DoctorHandler serves the doctor portal: day schedule, appointment
// lifecycle, inventory, treatment catalog, finance, and the dashboard.
type DoctorHandler struct {
	appointments ports.AppointmentService
	schedule     ports.ScheduleService
	inventory    ports.InventoryService
	treatments   ports.TreatmentService
	billing      ports.BillingService
	dashboard    ports.DashboardService
	log          zerolog.Logger
}

func NewDoctorHandler(
	appointments ports.AppointmentService,
	schedule ports.ScheduleService,
	inventory ports.InventoryService,
	treatments ports.TreatmentService,
	billing ports.BillingService,
	dashboard ports.DashboardService,
	log zerolog.Logger,
) *DoctorHandler {
	return &DoctorHandler{
		appointments: appointments,
		schedule:     schedule,
		inventory:    inventory,
		treatments:   treatments,
		billing:      billing,
		dashboard:    dashboard,
		log:          log,
	}
}

// Schedule godoc
// @Summary  Doctor day schedule
// @Tags     doctor
// @Produce  json
// @Security BearerAuth
// @Param    date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success  200 {array} ports.DoctorAppointmentView
// @Router   /doctor/schedule [get]
func (h *DoctorHandler) Schedule(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	day, err := h.appointments.DoctorDay(c.Request().Context(), cl.UserID, c.QueryParam("date"))
	if err != nil {
		return err
	}
	if day == nil {
		day = []ports.DoctorAppointmentView{}
	}
	return c.JSON(http.StatusOK, day)
}

type blockSlotRequest struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

// Block godoc
// @Summary  Block a slot on the doctor's own calendar
// @Tags     doctor
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    request body blockSlotRequest true "Slot to block"
// @Success  201 {object} domain.Appointment
// @Failure  409 {object} errorResponse
// @Router   /doctor/schedule/block [post]
func (h *DoctorHandler) Block(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req blockSlotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	appt, err := h.appointments.Block(c.Request().Context(), cl.UserID, req.Date, req.Time)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, appt)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress completed cancelled"`
}

// UpdateStatus godoc
// @Summary  Transition an appointment's lifecycle status
// @Tags     doctor
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id      path string              true "Appointment id"
// @Param    request body updateStatusRequest true "Target status"
// @Success  200 {object} map[string]string
// @Failure  409 {object} errorResponse
// @Failure  422 {object} errorResponse
// @Router   /doctor/appointments/{id}/status [put]
func (h *DoctorHandler) UpdateStatus(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	status := domain.AppointmentStatus(req.Status)
	if err := h.appointments.UpdateStatus(c.Request().Context(), cl.UserID, c.Param("id"), status); err != nil {
		return err
	}
	if status == domain.StatusCompleted {
		metrics.InvoicesIssuedTotal.Inc()
	}
	return c.JSON(http.StatusOK, map[string]string{"status": req.Status})
}

type scheduleConfigRequest struct {
	ConsultationStyle string `json:"consultation_style" validate:"required,oneof=fast normal detailed surgery"`
	WantsBreaks       bool   `json:"wants_breaks"`
	WorkStart         string `json:"work_start,omitempty"`
	WorkEnd           string `json:"work_end,omitempty"`
}

// ScheduleConfig godoc
// @Summary  Update consultation style, breaks, and working window
// @Tags     doctor
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    request body scheduleConfigRequest true "Schedule preferences"
// @Success  200 {object} domain.ScheduleConfig
// @Router   /doctor/schedule/config [put]
func (h *DoctorHandler) ScheduleConfig(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req scheduleConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cfg, err := h.schedule.UpdateConfig(c.Request().Context(), cl.UserID, ports.ScheduleConfigInput{
		ConsultationStyle: req.ConsultationStyle,
		WantsBreaks:       req.WantsBreaks,
		WorkStart:         req.WorkStart,
		WorkEnd:           req.WorkEnd,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}

type inventoryItemRequest struct {
	Name      string `json:"name" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=0"`
	Unit      string `json:"unit" validate:"required"`
	Threshold int    `json:"threshold" validate:"min=0"`
}

// ListInventory godoc
// @Summary  Inventory for the doctor's hospital
// @Tags     inventory
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} domain.InventoryItem
// @Router   /doctor/inventory [get]
func (h *DoctorHandler) ListInventory(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	items, err := h.inventory.List(c.Request().Context(), cl.UserID)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.InventoryItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// CreateInventory godoc
// @Summary  Add an inventory item
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    request body inventoryItemRequest true "Item fields"
// @Success  201 {object} domain.InventoryItem
// @Router   /doctor/inventory [post]
func (h *DoctorHandler) CreateInventory(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req inventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.inventory.Create(c.Request().Context(), cl.UserID, ports.InventoryItemInput{
		Name:      req.Name,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Threshold: req.Threshold,
	})
	if err != nil {
		return err
	}
	h.refreshLowStockGauge(c, cl.UserID, item.HospitalID)
	return c.JSON(http.StatusCreated, item)
}

// refreshLowStockGauge recounts the hospital's low-stock items after a
// mutation. Gauge staleness is tolerable, so failures only log.
func (h *DoctorHandler) refreshLowStockGauge(c echo.Context, doctorUserID, hospitalID string) {
	if hospitalID == "" {
		return
	}
	items, err := h.inventory.LowStock(c.Request().Context(), doctorUserID)
	if err != nil {
		h.log.Warn().Err(err).Str("hospital_id", hospitalID).Msg("low stock gauge refresh failed")
		return
	}
	metrics.LowStockItems.WithLabelValues(hospitalID).Set(float64(len(items)))
}

type inventoryUpdateRequest struct {
	Name      string `json:"name,omitempty"`
	Quantity  *int   `json:"quantity,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Threshold *int   `json:"threshold,omitempty"`
	// Delta, when set, adjusts the quantity instead of replacing fields.
	Delta *int `json:"delta,omitempty"`
}

// UpdateInventory godoc
// @Summary  Replace an item's fields, or adjust its quantity with a delta
// @Description A body carrying "delta" adjusts the stock level; otherwise the
// @Description request is a full replacement and all fields are required.
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id      path string                 true "Item id"
// @Param    request body inventoryUpdateRequest true "Full item fields, or a delta"
// @Success  200 {object} domain.InventoryItem
// @Failure  400 {object} errorResponse
// @Failure  403 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /doctor/inventory/{id} [put]
func (h *DoctorHandler) UpdateInventory(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req inventoryUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Delta != nil {
		item, err := h.inventory.Adjust(c.Request().Context(), cl.UserID, c.Param("id"), *req.Delta)
		if err != nil {
			return err
		}
		h.refreshLowStockGauge(c, cl.UserID, item.HospitalID)
		return c.JSON(http.StatusOK, item)
	}

	// Full replacement: a partial body would silently blank the omitted
	// fields, so reject it instead.
	if req.Name == "" || req.Unit == "" || req.Quantity == nil || req.Threshold == nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			"full update requires name, quantity, unit, and threshold; send delta to adjust stock")
	}

	item, err := h.inventory.Update(c.Request().Context(), cl.UserID, c.Param("id"), ports.InventoryItemInput{
		Name:      req.Name,
		Quantity:  *req.Quantity,
		Unit:      req.Unit,
		Threshold: *req.Threshold,
	})
	if err != nil {
		return err
	}
	h.refreshLowStockGauge(c, cl.UserID, item.HospitalID)
	return c.JSON(http.StatusOK, item)
}

// DeleteInventory godoc
// @Summary  Remove an inventory item
// @Tags     inventory
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "Item id"
// @Success  200 {object} map[string]string
// @Router   /doctor/inventory/{id} [delete]
func (h *DoctorHandler) DeleteInventory(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.inventory.Delete(c.Request().Context(), cl.UserID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "item deleted"})
}

// LowStock godoc
// @Summary  Items at or below their warning threshold
// @Tags     inventory
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} domain.InventoryItem
// @Router   /doctor/inventory/low-stock [get]
func (h *DoctorHandler) LowStock(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	items, err := h.inventory.LowStock(c.Request().Context(), cl.UserID)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.InventoryItem{}
	}
	return c.JSON(http.StatusOK, items)
}

type treatmentRequest struct {
	Name            string                  `json:"name" validate:"required"`
	Cost            float64                 `json:"cost" validate:"min=0"`
	DurationMinutes int                     `json:"duration_minutes" validate:"min=0"`
	InventoryUsage  []domain.InventoryUsage `json:"inventory_usage,omitempty"`
}

// ListTreatments godoc
// @Summary  Treatment catalog for the doctor's hospital
// @Tags     treatments
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} domain.Treatment
// @Router   /doctor/treatments [get]
func (h *DoctorHandler) ListTreatments(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	list, err := h.treatments.List(c.Request().Context(), cl.UserID)
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domain.Treatment{}
	}
	return c.JSON(http.StatusOK, list)
}

// CreateTreatment godoc
// @Summary  Add a catalog treatment
// @Tags     treatments
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    request body treatmentRequest true "Treatment fields"
// @Success  201 {object} domain.Treatment
// @Failure  404 {object} errorResponse
// @Router   /doctor/treatments [post]
func (h *DoctorHandler) CreateTreatment(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req treatmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	treatment, err := h.treatments.Create(c.Request().Context(), cl.UserID, ports.TreatmentInput{
		Name:            req.Name,
		Cost:            req.Cost,
		DurationMinutes: req.DurationMinutes,
		InventoryUsage:  req.InventoryUsage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, treatment)
}

// UpdateTreatment godoc
// @Summary  Update a catalog treatment
// @Tags     treatments
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id      path string           true "Treatment id"
// @Param    request body treatmentRequest true "Treatment fields"
// @Success  200 {object} domain.Treatment
// @Router   /doctor/treatments/{id} [put]
func (h *DoctorHandler) UpdateTreatment(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req treatmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	treatment, err := h.treatments.Update(c.Request().Context(), cl.UserID, c.Param("id"), ports.TreatmentInput{
		Name:            req.Name,
		Cost:            req.Cost,
		DurationMinutes: req.DurationMinutes,
		InventoryUsage:  req.InventoryUsage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, treatment)
}

// DeleteTreatment godoc
// @Summary  Remove a catalog treatment
// @Tags     treatments
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "Treatment id"
// @Success  200 {object} map[string]string
// @Router   /doctor/treatments/{id} [delete]
func (h *DoctorHandler) DeleteTreatment(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.treatments.Delete(c.Request().Context(), cl.UserID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "treatment deleted"})
}

// Finance godoc
// @Summary  Revenue summary and forecast for the doctor's hospital
// @Tags     billing
// @Produce  json
// @Security BearerAuth
// @Param    period query string false "daily | weekly | monthly (default monthly)"
// @Success  200 {object} ports.FinanceSummary
// @Router   /doctor/finance [get]
func (h *DoctorHandler) Finance(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	summary, err := h.billing.Finance(c.Request().Context(), cl.UserID, ports.FinancePeriod(c.QueryParam("period")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// PayInvoice godoc
// @Summary  Mark an invoice paid
// @Tags     billing
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "Invoice id"
// @Success  200 {object} map[string]string
// @Failure  409 {object} errorResponse
// @Router   /doctor/invoices/{id}/pay [put]
func (h *DoctorHandler) PayInvoice(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.billing.MarkPaid(c.Request().Context(), cl.UserID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "paid"})
}

// Dashboard godoc
// @Summary  Doctor landing-page aggregate
// @Tags     doctor
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} ports.DoctorDashboard
// @Router   /doctor/dashboard [get]
func (h *DoctorHandler) Dashboard(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	dash, err := h.dashboard.Doctor(c.Request().Context(), cl.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dash)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/api/metrics"
	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// PatientHandler serves the public booking pages and the patient portal.
type PatientHandler struct {
	appointments ports.AppointmentService
	schedule     ports.ScheduleService
	billing      ports.BillingService
	log          zerolog.Logger
}

func NewPatientHandler(appointments ports.AppointmentService, schedule ports.ScheduleService, billing ports.BillingService, log zerolog.Logger) *PatientHandler {
	return &PatientHandler{appointments: appointments, schedule: schedule, billing: billing, log: log}
}

// Doctors godoc
// @Summary  Verified doctors available for booking
// @Tags     booking
// @Produce  json
// @Success  200 {array} ports.PublicDoctor
// @Router   /doctors [get]
func (h *PatientHandler) Doctors(c echo.Context) error {
	doctors, err := h.appointments.ListPublicDoctors(c.Request().Context())
	if err != nil {
		return err
	}
	if doctors == nil {
		doctors = []ports.PublicDoctor{}
	}
	return c.JSON(http.StatusOK, doctors)
}

// Slots godoc
// @Summary  Free slots for a doctor on a date
// @Tags     booking
// @Produce  json
// @Param    id   path  string true  "Doctor id"
// @Param    date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success  200 {array} domain.Slot
// @Failure  404 {object} errorResponse
// @Router   /doctors/{id}/slots [get]
func (h *PatientHandler) Slots(c echo.Context) error {
	slots, err := h.schedule.AvailableSlots(c.Request().Context(), c.Param("id"), c.QueryParam("date"))
	if err != nil {
		return err
	}
	if slots == nil {
		slots = []domain.Slot{}
	}
	return c.JSON(http.StatusOK, slots)
}

type bookRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Reason   string `json:"reason,omitempty"`
}

// Book godoc
// @Summary  Book an appointment
// @Tags     patient
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    request body bookRequest true "Booking payload"
// @Success  201 {object} domain.Appointment
// @Failure  400 {object} errorResponse
// @Failure  409 {object} errorResponse
// @Router   /patient/appointments [post]
func (h *PatientHandler) Book(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	appt, err := h.appointments.Book(c.Request().Context(), ports.BookAppointmentInput{
		PatientUserID: cl.UserID,
		DoctorID:      req.DoctorID,
		Date:          req.Date,
		Time:          req.Time,
		Reason:        req.Reason,
	})
	if err != nil {
		return err
	}

	metrics.BookingsTotal.Inc()
	return c.JSON(http.StatusCreated, appt)
}

// Appointments godoc
// @Summary  Patient appointment history, newest first
// @Tags     patient
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} ports.PatientAppointmentView
// @Router   /patient/appointments [get]
func (h *PatientHandler) Appointments(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	views, err := h.appointments.ListForPatient(c.Request().Context(), cl.UserID)
	if err != nil {
		return err
	}
	if views == nil {
		views = []ports.PatientAppointmentView{}
	}
	return c.JSON(http.StatusOK, views)
}

// Cancel godoc
// @Summary  Cancel the patient's own appointment
// @Tags     patient
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "Appointment id"
// @Success  200 {object} map[string]string
// @Failure  403 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /patient/appointments/{id} [delete]
func (h *PatientHandler) Cancel(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.appointments.Cancel(c.Request().Context(), cl.UserID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "appointment cancelled"})
}

// Invoices godoc
// @Summary  Patient invoices, newest first
// @Tags     patient
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} domain.Invoice
// @Router   /patient/invoices [get]
func (h *PatientHandler) Invoices(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	invoices, err := h.billing.ListForPatient(c.Request().Context(), cl.UserID)
	if err != nil {
		return err
	}
	if invoices == nil {
		invoices = []*domain.Invoice{}
	}
	return c.JSON(http.StatusOK, invoices)
}

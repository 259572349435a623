package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/alshifa/clinic-system/internal/api/handler"
	"github.com/alshifa/clinic-system/internal/api/middleware"
	"github.com/alshifa/clinic-system/internal/core/domain"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Patient      *handler.PatientHandler
	Doctor       *handler.DoctorHandler
	Organization *handler.OrganizationHandler
	Admin        *handler.AdminHandler
	Agent        *handler.AgentHandler
}

// NewRouter builds the echo instance with middleware, error handling, and
// all role-scoped route groups.
func NewRouter(h Handlers, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	// operational endpoints
	e.GET("/healthz", h.Health.Live)
	e.GET("/readyz", h.Health.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// public
	v1.POST("/auth/register", h.Auth.Register)
	v1.POST("/auth/verify-otp", h.Auth.VerifyOTP)
	v1.POST("/auth/login", h.Auth.Login)
	v1.GET("/auth/hospitals", h.Auth.Hospitals)
	v1.GET("/doctors", h.Patient.Doctors)
	v1.GET("/doctors/:id/slots", h.Patient.Slots)

	auth := middleware.Auth(jwtSecret)

	// any authenticated role
	v1.GET("/auth/me", h.Auth.Me, auth)
	v1.POST("/agent/chat", h.Agent.Chat, auth)

	patient := v1.Group("/patient", auth, middleware.RBAC(domain.RolePatient))
	patient.POST("/appointments", h.Patient.Book)
	patient.GET("/appointments", h.Patient.Appointments)
	patient.DELETE("/appointments/:id", h.Patient.Cancel)
	patient.GET("/invoices", h.Patient.Invoices)

	doctor := v1.Group("/doctor", auth, middleware.RBAC(domain.RoleDoctor))
	doctor.GET("/schedule", h.Doctor.Schedule)
	doctor.POST("/schedule/block", h.Doctor.Block)
	doctor.PUT("/schedule/config", h.Doctor.ScheduleConfig)
	doctor.PUT("/appointments/:id/status", h.Doctor.UpdateStatus)
	doctor.GET("/inventory", h.Doctor.ListInventory)
	doctor.POST("/inventory", h.Doctor.CreateInventory)
	doctor.GET("/inventory/low-stock", h.Doctor.LowStock)
	doctor.PUT("/inventory/:id", h.Doctor.UpdateInventory)
	doctor.DELETE("/inventory/:id", h.Doctor.DeleteInventory)
	doctor.GET("/treatments", h.Doctor.ListTreatments)
	doctor.POST("/treatments", h.Doctor.CreateTreatment)
	doctor.PUT("/treatments/:id", h.Doctor.UpdateTreatment)
	doctor.DELETE("/treatments/:id", h.Doctor.DeleteTreatment)
	doctor.GET("/finance", h.Doctor.Finance)
	doctor.PUT("/invoices/:id/pay", h.Doctor.PayInvoice)
	doctor.GET("/dashboard", h.Doctor.Dashboard)

	org := v1.Group("/organization", auth, middleware.RBAC(domain.RoleOrganization))
	org.GET("/stats", h.Organization.Stats)
	org.GET("/doctors", h.Organization.Doctors)
	org.PUT("/location", h.Organization.UpdateLocation)

	admin := v1.Group("/admin", auth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/pending-verifications", h.Admin.PendingVerifications)
	admin.POST("/approve-account/:id", h.Admin.Approve)
	admin.POST("/reject-account/:id", h.Admin.Reject)

	return e
}

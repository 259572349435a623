package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/api/metrics"
	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// AuthHandler serves registration, verification, and login endpoints.
type AuthHandler struct {
	auth      ports.AuthService
	hospitals ports.HospitalRepository
	log       zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, hospitals ports.HospitalRepository, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, hospitals: hospitals, log: log}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=patient doctor organization"`

	// doctor
	Specialization string `json:"specialization,omitempty"`
	LicenseNumber  string `json:"license_number,omitempty"`
	HospitalName   string `json:"hospital_name,omitempty"`
	WantsBreaks    bool   `json:"wants_breaks,omitempty"`

	// patient
	Age    int    `json:"age,omitempty" validate:"omitempty,min=0,max=130"`
	Gender string `json:"gender,omitempty"`

	// organization
	Address string  `json:"address,omitempty"`
	Pincode string  `json:"pincode,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

type registerResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// Register godoc
// @Summary  Register a patient, doctor, or clinic account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body registerRequest true "Registration payload"
// @Success  201 {object} registerResponse
// @Failure  400 {object} errorResponse
// @Failure  409 {object} errorResponse
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	email, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		Role:           req.Role,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
		HospitalName:   req.HospitalName,
		WantsBreaks:    req.WantsBreaks,
		Age:            req.Age,
		Gender:         req.Gender,
		Address:        req.Address,
		Pincode:        req.Pincode,
		Lat:            req.Lat,
		Lng:            req.Lng,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(req.Role).Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Message: "verification code sent",
		Email:   email,
	})
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// VerifyOTP godoc
// @Summary  Verify the emailed one-time code
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body verifyOTPRequest true "Verification payload"
// @Success  200 {object} ports.VerifyOTPResult
// @Failure  400 {object} errorResponse
// @Router   /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.auth.VerifyOTP(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login godoc
// @Summary  Authenticate and receive a JWT
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body loginRequest true "Credentials"
// @Success  200 {object} loginResponse
// @Failure  401 {object} errorResponse
// @Failure  403 {object} errorResponse
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Me godoc
// @Summary  Current account profile
// @Tags     auth
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} domain.User
// @Failure  401 {object} errorResponse
// @Router   /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	user, err := h.auth.Profile(c.Request().Context(), cl.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Hospitals godoc
// @Summary  Verified clinics, for the doctor registration picker
// @Tags     auth
// @Produce  json
// @Success  200 {array} domain.Hospital
// @Router   /auth/hospitals [get]
func (h *AuthHandler) Hospitals(c echo.Context) error {
	hospitals, err := h.hospitals.ListVerified(c.Request().Context())
	if err != nil {
		return err
	}
	if hospitals == nil {
		hospitals = []*domain.Hospital{}
	}
	return c.JSON(http.StatusOK, hospitals)
}

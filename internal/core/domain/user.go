package domain

import (
	"errors"
	"time"
)

const (
	RolePatient      = "patient"
	RoleDoctor       = "doctor"
	RoleOrganization = "organization"
	RoleAdmin        = "admin"
)

// ValidRegistrationRole reports whether r is a role accepted at registration
// time. Admin accounts are seeded at startup, never self-registered.
func ValidRegistrationRole(r string) bool {
	return r == RolePatient || r == RoleDoctor || r == RoleOrganization
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("email already registered")
var ErrEmailNotVerified = errors.New("email not verified")
var ErrPendingApproval = errors.New("account pending approval")
var ErrInvalidOTP = errors.New("invalid or expired otp")
var ErrPatientNotFound = errors.New("patient profile not found")
var ErrForbidden = errors.New("access forbidden")

// User models an authenticated actor in the system.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Patient is the role profile attached to a user with role "patient".
type Patient struct {
	ID     string `json:"id" bson:"_id,omitempty"`
	UserID string `json:"user_id" bson:"user_id"`
	Age    int    `json:"age" bson:"age"`
	Gender string `json:"gender,omitempty" bson:"gender,omitempty"`
}

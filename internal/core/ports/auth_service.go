package ports

import (
	"context"

	"github.com/alshifa/clinic-system/internal/core/domain"
)

// RegisterInput carries everything a registration request can supply.
// Role-specific fields are ignored for other roles.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string

	// doctor
	Specialization string
	LicenseNumber  string
	HospitalName   string
	WantsBreaks    bool

	// patient
	Age    int
	Gender string

	// organization
	Address string
	Pincode string
	Lat     float64
	Lng     float64
}

// VerifyOTPResult tells the client what happens after email verification:
// patients become active immediately, doctors and organizations wait for
// admin approval.
type VerifyOTPResult struct {
	Role   string
	Status string // "active" or "pending_admin"
}

// AuthService implements registration, email verification, and login.
type AuthService interface {
	// Register creates the account and its role profile, issues an OTP, and
	// emails it. Returns the normalized email the OTP was sent to.
	Register(ctx context.Context, in RegisterInput) (string, error)
	VerifyOTP(ctx context.Context, email, code string) (*VerifyOTPResult, error)
	// Login returns a signed JWT and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	// EnsureAdmin seeds the bootstrap admin account if it does not exist.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// OTPStore abstracts the short-lived OTP storage (Redis).
type OTPStore interface {
	// Issue stores a fresh code for the email, replacing any previous one.
	Issue(ctx context.Context, email, code string) error
	// Verify consumes the code on success. Repeated failures for the same
	// email exhaust the code.
	Verify(ctx context.Context, email, code string) (bool, error)
}

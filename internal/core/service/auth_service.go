package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
	"github.com/alshifa/clinic-system/internal/infrastructure/notify"
)

const otpLength = 6

// AuthService implements registration with OTP email verification, login
// with role approval gating, and admin bootstrap.
type AuthService struct {
	users     ports.UserRepository
	patients  ports.PatientRepository
	doctors   ports.DoctorRepository
	hospitals ports.HospitalRepository
	otp       ports.OTPStore
	mailer    notify.EmailSender
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	patients ports.PatientRepository,
	doctors ports.DoctorRepository,
	hospitals ports.HospitalRepository,
	otp ports.OTPStore,
	mailer notify.EmailSender,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		patients:  patients,
		doctors:   doctors,
		hospitals: hospitals,
		otp:       otp,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Register creates the account and its role profile, stores an OTP, and
// emails it. Re-registering an unverified email replaces the stale account.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || in.FullName == "" {
		return "", domain.ErrInvalidCredentials
	}
	if !domain.ValidRegistrationRole(in.Role) {
		return "", domain.ErrInvalidCredentials
	}

	existing, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.EmailVerified:
		return "", domain.ErrUserExists
	case err == nil:
		// Stale unverified signup: clear it so the new one can proceed.
		s.removeAccount(ctx, existing)
	case !errors.Is(err, domain.ErrUserNotFound):
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		FullName:     in.FullName,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", err
	}

	if err := s.createProfile(ctx, user, in); err != nil {
		// Roll the half-created account back so the email can retry.
		if delErr := s.users.Delete(ctx, user.ID); delErr != nil {
			s.log.Warn().Err(delErr).Str("user_id", user.ID).Msg("failed to roll back user after profile error")
		}
		return "", err
	}

	code, err := generateOTP()
	if err != nil {
		return "", err
	}
	if err := s.otp.Issue(ctx, email, code); err != nil {
		return "", err
	}

	if err := s.mailer.Send(ctx, notify.EmailMessage{
		To:      email,
		ToName:  in.FullName,
		Subject: "Verify your Al-Shifa account",
		Body:    fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code),
	}); err != nil {
		// Delivery problems are recoverable: the user can re-register.
		s.log.Warn().Err(err).Str("email", email).Msg("failed to send otp email")
	}

	s.log.Info().Str("email", email).Str("role", in.Role).Msg("registration started")
	return email, nil
}

func (s *AuthService) createProfile(ctx context.Context, user *domain.User, in ports.RegisterInput) error {
	switch user.Role {
	case domain.RolePatient:
		_, err := s.patients.Create(ctx, &domain.Patient{
			UserID: user.ID,
			Age:    in.Age,
			Gender: in.Gender,
		})
		return err

	case domain.RoleOrganization:
		_, err := s.hospitals.Create(ctx, &domain.Hospital{
			OwnerID: user.ID,
			Name:    user.FullName,
			Location: domain.Location{
				Address:     in.Address,
				Pincode:     in.Pincode,
				Coordinates: domain.Coordinates{Lat: in.Lat, Lng: in.Lng},
			},
		})
		return err

	case domain.RoleDoctor:
		if in.HospitalName == "" {
			return domain.ErrHospitalNotFound
		}
		hospital, err := s.hospitals.FindByName(ctx, in.HospitalName)
		if err != nil {
			return err
		}
		schedule := domain.DefaultScheduleConfig()
		if in.WantsBreaks {
			schedule.BreakMinutes = domain.BreakBufferMinutes
		}
		_, err = s.doctors.Create(ctx, &domain.Doctor{
			UserID:         user.ID,
			HospitalID:     hospital.ID,
			Specialization: in.Specialization,
			LicenseNumber:  in.LicenseNumber,
			Schedule:       schedule,
		})
		return err
	}
	return domain.ErrInvalidCredentials
}

// removeAccount deletes a user and whatever role profile it owns.
// Best effort: a dangling profile is harmless once the user is gone.
func (s *AuthService) removeAccount(ctx context.Context, user *domain.User) {
	if err := s.users.Delete(ctx, user.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to delete stale user")
	}
	switch user.Role {
	case domain.RolePatient:
		_ = s.patients.DeleteByUserID(ctx, user.ID)
	case domain.RoleDoctor:
		if d, err := s.doctors.FindByUserID(ctx, user.ID); err == nil {
			_ = s.doctors.Delete(ctx, d.ID)
		}
	case domain.RoleOrganization:
		if h, err := s.hospitals.FindByOwnerID(ctx, user.ID); err == nil {
			_ = s.hospitals.Delete(ctx, h.ID)
		}
	}
}

// VerifyOTP marks the email verified. Patients are active immediately;
// doctors and organizations wait for admin approval.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (*ports.VerifyOTPResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	ok, err := s.otp.Verify(ctx, email, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidOTP
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetEmailVerified(ctx, user.ID); err != nil {
		return nil, err
	}

	status := "pending_admin"
	if user.Role == domain.RolePatient {
		status = "active"
	}
	s.log.Info().Str("email", email).Str("role", user.Role).Msg("email verified")
	return &ports.VerifyOTPResult{Role: user.Role, Status: status}, nil
}

// Login authenticates the user and returns a signed JWT. Unverified emails
// and unapproved doctor/organization accounts are rejected.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return "", nil, domain.ErrEmailNotVerified
	}

	profileID, err := s.profileID(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user, profileID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// profileID resolves the role profile id embedded in the JWT and enforces
// admin approval for doctors and organizations.
func (s *AuthService) profileID(ctx context.Context, user *domain.User) (string, error) {
	switch user.Role {
	case domain.RolePatient:
		p, err := s.patients.FindByUserID(ctx, user.ID)
		if err != nil {
			return "", err
		}
		return p.ID, nil
	case domain.RoleDoctor:
		d, err := s.doctors.FindByUserID(ctx, user.ID)
		if err != nil {
			return "", err
		}
		if !d.Verified {
			return "", domain.ErrPendingApproval
		}
		return d.ID, nil
	case domain.RoleOrganization:
		h, err := s.hospitals.FindByOwnerID(ctx, user.ID)
		if err != nil {
			return "", err
		}
		if !h.Verified {
			return "", domain.ErrPendingApproval
		}
		return h.ID, nil
	}
	return "", nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// EnsureAdmin seeds the bootstrap admin account. A configured password is
// required; without one the seed is skipped.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if password == "" {
		s.log.Warn().Msg("admin password not configured, skipping admin seed")
		return nil
	}
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = s.users.Create(ctx, &domain.User{
		Email:         email,
		FullName:      "Administrator",
		PasswordHash:  string(hash),
		Role:          domain.RoleAdmin,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("email", email).Msg("admin account seeded")
	return nil
}

func (s *AuthService) generateToken(user *domain.User, profileID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":        user.ID,
		"role":       user.Role,
		"profile_id": profileID,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// generateOTP returns a random numeric code of otpLength digits.
func generateOTP() (string, error) {
	digits := make([]byte, otpLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate otp: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

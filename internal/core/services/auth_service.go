package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/StaySuite/stay_booking_app/internal/middleware"
	"github.com/StaySuite/stay_booking_app/internal/platform/config"
	"github.com/StaySuite/stay_booking_app/internal/utils"
)

// ErrInvalidCredentials is returned for a bad username/password pair.
// Deliberately indistinguishable between the two cases.
var ErrInvalidCredentials = errors.New("invalid username or password")

// authService authenticates staff users and issues bearer tokens. The
// booking core never sees credentials; it only receives the caller's ID.
type authService struct {
	BaseService
	cfg       *config.Config
	staffRepo portsrepo.StaffUserRepositoryFacade
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, staffRepo portsrepo.StaffUserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, staffRepo: staffRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and returns a signed JWT whose claims carry
// the staff user's ID (subject) and role.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.StaffUser, error) {
	user, err := s.staffRepo.FindStaffUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up staff user")
		return "", nil, fmt.Errorf("failed to look up staff user: %w", err)
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Password check failed", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := middleware.AuthClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.StaffUserID,
			Issuer:    s.cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiryDuration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token")
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.LogInfo(ctx, "Staff user logged in", "staff_user_id", user.StaffUserID, "role", string(user.Role))
	return token, user, nil
}

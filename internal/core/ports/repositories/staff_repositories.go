package repositories

import (
	"context"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
)

// StaffUserRepositoryFacade defines operations on staff operator accounts.
type StaffUserRepositoryFacade interface {
	// FindStaffUserByUsername retrieves an account by username.
	FindStaffUserByUsername(ctx context.Context, username string) (*domain.StaffUser, error)

	// FindStaffUserByID retrieves an account by identifier.
	FindStaffUserByID(ctx context.Context, staffUserID string) (*domain.StaffUser, error)
}

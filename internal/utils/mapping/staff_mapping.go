package mapping

import (
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	"github.com/StaySuite/stay_booking_app/internal/models"
)

// ToDomainStaffUser converts a model StaffUser to a domain StaffUser.
func ToDomainStaffUser(m models.StaffUser) domain.StaffUser {
	return domain.StaffUser{
		StaffUserID:  m.StaffUserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         domain.StaffRole(m.Role),
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

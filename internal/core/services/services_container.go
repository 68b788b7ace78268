package services

import (
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/StaySuite/stay_booking_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The availability checker is initialized first since booking and
	// lifecycle operations depend on it.
	container.Availability = NewAvailabilityService(repos.ReservationRepo, repos.BlockRepo, repos.RoomRepo)

	container.Reservation = NewReservationService(repos.ReservationRepo, repos.RoomRepo, container.Availability)
	container.Folio = NewFolioService(repos.FolioRepo, repos.ReservationRepo, repos.RoomRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Room = NewRoomService(repos.RoomRepo, repos.BlockRepo)
	container.Auth = NewAuthService(cfg, repos.StaffRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AvailabilitySvcFacade = (*availabilityService)(nil)
	_ portssvc.ReservationSvcFacade  = (*reservationService)(nil)
	_ portssvc.FolioSvcFacade        = (*folioService)(nil)
	_ portssvc.ReportingSvcFacade    = (*reportingService)(nil)
	_ portssvc.RoomSvcFacade         = (*roomService)(nil)
	_ portssvc.AuthSvcFacade         = (*authService)(nil)
)

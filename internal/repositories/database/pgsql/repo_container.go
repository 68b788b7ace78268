package pgsql

import (
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	reservationRepo := newPgxReservationRepository(dbPool)
	folioRepo := newPgxFolioRepository(dbPool)
	roomRepo := newPgxRoomRepository(dbPool)
	blockRepo := newPgxBlockRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)
	staffRepo := newPgxStaffUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ReservationRepo: reservationRepo,
		FolioRepo:       folioRepo,
		RoomRepo:        roomRepo,
		BlockRepo:       blockRepo,
		ReportingRepo:   reportingRepo,
		StaffRepo:       staffRepo,
	}
}

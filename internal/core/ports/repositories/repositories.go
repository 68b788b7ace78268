package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ReservationRepo ReservationRepositoryFacade
	FolioRepo       FolioRepositoryFacade
	RoomRepo        RoomRepositoryFacade
	BlockRepo       BlockRepositoryFacade
	ReportingRepo   ReportingRepository
	StaffRepo       StaffUserRepositoryFacade
}

package dto

// LoginRequest carries staff credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the issued bearer token and the caller's role.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// BlockRequest creates a maintenance block on a room.
type BlockRequest struct {
	RoomID    string `json:"roomID" binding:"required"`
	StartDate string `json:"startDate" binding:"required,daykey"`
	EndDate   string `json:"endDate" binding:"required,daykey"`
	Reason    string `json:"reason"`
}

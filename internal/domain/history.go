package domain

import "time"

// HistoryEntry is one service/repair record for a client. ID is assigned by
// the store and is also the shop's repair-order number.
type HistoryEntry struct {
	ID            int64
	ClientName    string
	Machine       string
	WorkDate      time.Time
	Description   string
	MaterialState string
	Phone         string
	Technician    string
	SerialNumber  string
	EndDate       *time.Time
	Email         string
	// Status is derived once at insert time and stored as-is.
	Status    Status
	CreatedAt time.Time
}

package models

// Storage is the persisted history snapshot, records oldest first.
type Storage struct {
	Records []*HistoryRecord `json:"records"`
}

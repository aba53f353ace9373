package domain

import "time"

// Signal is one SOS transmission. It is immutable once stored; the matched
// team ids are a snapshot of the geo search at signal time.
type Signal struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	CreatedAt      time.Time `json:"created_at"`
	NearestTeamIDs []int64   `json:"nearest_team_ids"`
	CaseID         int64     `json:"case_id"`
}

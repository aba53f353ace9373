package domain

type TeamStatus string

const (
	TeamAvailable TeamStatus = "available"
	TeamBusy      TeamStatus = "busy"
)

type Team struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Status    TeamStatus `json:"status"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
}

package domain

import "time"

// CachedLocation is a short-lived last-known position. Freshness is the
// caller's concern; the cache never rewrites Timestamp.
type CachedLocation struct {
	ActorID   int64     `json:"actor_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

const LocationFreshFor = 15 * time.Second

func (l CachedLocation) Fresh(now time.Time) bool {
	return now.Sub(l.Timestamp) <= LocationFreshFor
}

package service

import (
	"context"
	"math"

	"log/slog"
)

// search radii in km, tried in order; first non-empty ring wins
var searchRadiiKm = []float64{5, 10, 20, 30}

// GeoMatcher finds candidate rescue teams near a point. Pure read: team
// status is only ever changed by case transitions.
type GeoMatcher struct {
	teams  TeamRepository
	logger *slog.Logger
}

func NewGeoMatcher(teams TeamRepository, logger *slog.Logger) *GeoMatcher {
	return &GeoMatcher{teams: teams, logger: logger}
}

// FindTeams widens the search ring until it finds an available team. When
// nobody is within the widest ring, every available team is returned, so
// the result is empty only if no team is available anywhere.
func (g *GeoMatcher) FindTeams(ctx context.Context, lat, lng float64) ([]int64, error) {
	available, err := g.teams.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		g.logger.Warn("no available teams system-wide")
		return nil, nil
	}

	for _, radius := range searchRadiiKm {
		var ids []int64
		for _, t := range available {
			if haversine(lat, lng, t.Latitude, t.Longitude) <= radius {
				ids = append(ids, t.ID)
			}
		}
		if len(ids) > 0 {
			g.logger.Debug("teams matched",
				slog.Float64("radius_km", radius),
				slog.Int("count", len(ids)),
			)
			return ids, nil
		}
	}

	// fallback: everyone available, distance notwithstanding
	ids := make([]int64, 0, len(available))
	for _, t := range available {
		ids = append(ids, t.ID)
	}
	g.logger.Info("no teams within max radius, falling back to all available",
		slog.Int("count", len(ids)),
	)
	return ids, nil
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371.0 // Earth radius, km

	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

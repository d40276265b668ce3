package utils

import "math"

const (
	earthRadiusKm     = 6371
	avgSpeedKmPerHour = 30
)

// HaversineDistanceKm returns the great-circle distance between two
// coordinates. Inputs are trusted; callers validate ranges.
func HaversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// EstimateTravelTimeMinutes converts a distance to driving minutes at an
// assumed urban average speed.
func EstimateTravelTimeMinutes(distanceKm float64) float64 {
	return distanceKm / avgSpeedKmPerHour * 60
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

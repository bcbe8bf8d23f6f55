package geo

// Package geo provides the distance math used by shelter search. It is a
// pure domain package with no I/O.

import "math"

const (
	earthRadiusM = 6371e3

	// Average walking speed of 5 km/h, in meters per minute.
	walkingSpeedMPerMin = 83.33
)

// DistanceM returns the great-circle distance in meters between two
// WGS84 points using the Haversine formula.
func DistanceM(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// WalkingMinutes converts a distance to a walking time estimate, rounded
// up to whole minutes.
func WalkingMinutes(distanceM float64) int {
	if distanceM <= 0 {
		return 0
	}
	return int(math.Ceil(distanceM / walkingSpeedMPerMin))
}

// Package geo holds the one Haversine implementation the rest of the
// codebase shares.
package geo

import "math"

const earthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// coordinate pairs, rounded to one decimal. The second return is false when
// either pair is unusable: non-finite values, out-of-range values, or the
// (0,0) null island placeholder that missing coordinates decode to.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, bool) {
	if !validPair(lat1, lon1) || !validPair(lat2, lon2) {
		return 0, false
	}

	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*10) / 10, true
}

func validPair(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return false
	}
	if lat == 0 && lon == 0 {
		return false
	}
	return true
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

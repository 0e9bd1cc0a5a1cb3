package service

import (
	"context"
	"math"
)

type GeocodeResult struct {
	Lat              float64
	Lng              float64
	FormattedAddress string
}

// Geocoder resolves a free-text address. It is consulted only at
// profile save time; the stored distance is never recomputed on reads.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
}

const earthRadiusMeters = 6371000

// DistanceMeters is the haversine great-circle distance between two
// coordinates.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusMeters * c)
}

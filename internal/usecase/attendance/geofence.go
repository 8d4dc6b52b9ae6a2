package attendance

import (
	"math"

	"trainershift-backend/internal/domain/store"
)

// Geo is a caller-supplied clock-in/out position.
type Geo struct {
	Lat float64
	Lon float64
}

const earthRadiusM = 6371000.0

// haversineMeters is the great-circle distance between two coordinates.
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// withinGeofence reports whether the position falls inside the store's
// radius. Missing store coordinates or a missing position yield false;
// they never block the clock action, only leave the flag unset.
func withinGeofence(st *store.Store, geo *Geo) bool {
	if st == nil || st.Latitude == nil || st.Longitude == nil || geo == nil {
		return false
	}
	radius := st.GeofenceRadiusM
	if radius <= 0 {
		radius = store.DefaultGeofenceRadiusM
	}
	return haversineMeters(*st.Latitude, *st.Longitude, geo.Lat, geo.Lon) <= radius
}

package kernel

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in WGS84 degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in WGS84 degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in WGS84 degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in WGS84 degrees.
	LongitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a position on Earth as a WGS84 latitude/longitude pair.
// GeoPoint is an immutable value object; the zero value is invalid and fails
// validation. Use NewGeoPoint to create instances.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(55.7558, 37.6173)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(p) // Output: GeoPoint(55.755800,37.617300)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the specified coordinates.
// Latitude must lie within [LatitudeMin..LatitudeMax] and longitude within
// [LongitudeMin..LongitudeMax]; otherwise a validation error is returned.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks if the GeoPoint was properly constructed via NewGeoPoint.
// The zero value fails this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in WGS84 degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in WGS84 degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// String returns a human-readable representation in the format
// "GeoPoint(lat,lon)". Implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lon)
}

// IsEqual compares two geo points for exact coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lon == other.lon, nil
}

// DistanceKm calculates the great-circle distance to another point in
// kilometers using the haversine formula over a spherical Earth model.
// Both points must be properly constructed.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	phi1 := radians(p.lat)
	phi2 := radians(other.lat)
	dPhi := radians(other.lat - p.lat)
	dLambda := radians(other.lon - p.lon)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// setLat sets the latitude with validation.
// Pointer receiver is used intentionally for self-encapsulated validation
// during construction, while all public methods use value receivers.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

// setLon sets the longitude with validation.
func (p *GeoPoint) setLon(lon float64) error {
	if lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}

	p.lon = lon
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

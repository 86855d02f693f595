package kernel

import (
	"errors"
	"fmt"
	"math"

	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrPositionIsNotConstructed is returned when a Position was not created via NewPosition.
var ErrPositionIsNotConstructed = errs.NewValueIsRequiredError("position must be created via NewPosition")

// Position is a WGS84 latitude/longitude pair reported while food is on its way.
//
// Example:
//
//	pos, err := kernel.NewPosition(52.52, 13.405)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
type Position struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewPosition validates latitude in [-90, 90] and longitude in [-180, 180].
// Both violations are reported at once.
func NewPosition(latitude, longitude float64) (Position, error) {
	p := Position{guard: guard.NewConstructorGuard()}
	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return Position{}, err
	}
	return p, nil
}

func (p Position) Validate() error {
	return p.guard.Validate(ErrPositionIsNotConstructed)
}

func (p Position) Latitude() float64 {
	return p.latitude
}

func (p Position) Longitude() float64 {
	return p.longitude
}

func (p Position) String() string {
	return fmt.Sprintf("Position(%.6f,%.6f)", p.latitude, p.longitude)
}

func (p *Position) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax || math.IsNaN(latitude) {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	p.latitude = latitude
	return nil
}

func (p *Position) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax || math.IsNaN(longitude) {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	p.longitude = longitude
	return nil
}

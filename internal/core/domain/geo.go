package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// LatLng is a geographic coordinate in decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Add returns the coordinate shifted by the given offsets.
func (p LatLng) Add(dLat, dLng float64) LatLng {
	return LatLng{Lat: p.Lat + dLat, Lng: p.Lng + dLng}
}

// String formats the coordinate as "lat,lng" with microdegree precision.
func (p LatLng) String() string {
	return strconv.FormatFloat(p.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(p.Lng, 'f', 6, 64)
}

// ParseLatLng parses a "lat,lng" pair.
func ParseLatLng(s string) (LatLng, error) {
	latStr, lngStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return LatLng{}, zerr.With(ErrInvalidPosition, "input", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return LatLng{}, zerr.With(zerr.Wrap(err, ErrInvalidPosition.Error()), "input", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return LatLng{}, zerr.With(zerr.Wrap(err, ErrInvalidPosition.Error()), "input", s)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return LatLng{}, zerr.With(ErrInvalidPosition, "input", s)
	}
	return LatLng{Lat: lat, Lng: lng}, nil
}

// Bounds is a geographic rectangle.
type Bounds struct {
	SouthWest LatLng `json:"southWest"`
	NorthEast LatLng `json:"northEast"`
}

// Contains reports whether p lies inside the rectangle.
// The south and west edges are inclusive, the north and east edges exclusive,
// so adjacent cells never both contain a point.
func (b Bounds) Contains(p LatLng) bool {
	return p.Lat >= b.SouthWest.Lat && p.Lat < b.NorthEast.Lat &&
		p.Lng >= b.SouthWest.Lng && p.Lng < b.NorthEast.Lng
}

// Center returns the midpoint of the rectangle.
func (b Bounds) Center() LatLng {
	return LatLng{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}

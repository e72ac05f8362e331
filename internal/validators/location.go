package validators

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"hazardwatch/internal/models"
)

var (
	ErrInvalidLocationFormat = errors.New("invalid location format, use 'lat,lng'")
	ErrInvalidLocationValue  = errors.New("invalid location numbers, must be numeric lat,lng")
)

// NormalizeLocation parses a raw location into a canonical GeoJSON point.
// Input is either a GeoJSON Point document or a "lat,lng" string, optionally
// quoted and whitespace-padded. The returned coordinates are [lng, lat]:
// GeoJSON order, reversed from the string input.
//
// Latitude/longitude bounds are not range-checked.
func NormalizeLocation(raw string) (models.GeoPoint, error) {
	loc := strings.TrimSpace(raw)

	if strings.HasPrefix(loc, "{") {
		return parsePointDocument(loc)
	}

	loc = stripQuotes(loc)

	parts := strings.Split(loc, ",")
	if len(parts) != 2 {
		return models.GeoPoint{}, ErrInvalidLocationFormat
	}

	lat, err := parseCoordinate(parts[0])
	if err != nil {
		return models.GeoPoint{}, err
	}
	lng, err := parseCoordinate(parts[1])
	if err != nil {
		return models.GeoPoint{}, err
	}

	return models.NewGeoPoint(lng, lat), nil
}

func parsePointDocument(raw string) (models.GeoPoint, error) {
	var point models.GeoPoint
	if err := json.Unmarshal([]byte(raw), &point); err != nil {
		return models.GeoPoint{}, ErrInvalidLocationFormat
	}
	if point.Type != "Point" || len(point.Coordinates) != 2 {
		return models.GeoPoint{}, ErrInvalidLocationFormat
	}
	for _, c := range point.Coordinates {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return models.GeoPoint{}, ErrInvalidLocationValue
		}
	}
	return point, nil
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
			(strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'")) {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidLocationValue
	}
	return v, nil
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SiteInput is the caller-provided description of a site, constructed once per
// request. Absent numeric fields default to zero except Dwellers, which
// defaults to a single-person household. RainfallMM is nil when the caller
// supplied no figure and rainfall must be resolved externally.
type SiteInput struct {
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Dwellers  int     `json:"dwellers"`
	RoofArea  float64 `json:"roof_area"`
	OpenSpace float64 `json:"open_space"`
	GWDepth   float64 `json:"gw_depth"`

	RainfallMM *float64 `json:"rainfall_mm,omitempty"`
}

// ParseSiteInput builds a SiteInput from a decoded JSON object. Numeric fields
// accept JSON numbers and numeric strings; null is treated as absent. A field
// that cannot be coerced yields an error naming the field, except rainfall_mm,
// which substitutes DefaultRainfallMM instead of failing.
func ParseSiteInput(payload map[string]any) (SiteInput, error) {
	site := SiteInput{}

	var err error
	if site.Name, err = stringField(payload, "name"); err != nil {
		return SiteInput{}, err
	}
	if site.Location, err = stringField(payload, "location"); err != nil {
		return SiteInput{}, err
	}
	if site.Latitude, err = floatField(payload, "latitude", 0); err != nil {
		return SiteInput{}, err
	}
	if site.Longitude, err = floatField(payload, "longitude", 0); err != nil {
		return SiteInput{}, err
	}
	if site.Dwellers, err = intField(payload, "dwellers", 1); err != nil {
		return SiteInput{}, err
	}
	if site.RoofArea, err = floatField(payload, "roof_area", 0); err != nil {
		return SiteInput{}, err
	}
	if site.OpenSpace, err = floatField(payload, "open_space", 0); err != nil {
		return SiteInput{}, err
	}
	if site.GWDepth, err = floatField(payload, "gw_depth", 0); err != nil {
		return SiteInput{}, err
	}

	if raw, ok := payload["rainfall_mm"]; ok && raw != nil {
		mm, err := coerceFloat(raw)
		if err != nil {
			mm = DefaultRainfallMM
		}
		site.RainfallMM = &mm
	}

	return site, nil
}

// stringField reads an optional free-text field. Only strings and null are
// accepted; numbers are not stringified.
func stringField(payload map[string]any, key string) (string, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T", key, raw)
	}
	return s, nil
}

func floatField(payload map[string]any, key string, fallback float64) (float64, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return fallback, nil
	}
	v, err := coerceFloat(raw)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", key, err)
	}
	return v, nil
}

func intField(payload map[string]any, key string, fallback int) (int, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return fallback, nil
	}
	v, err := coerceInt(raw)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", key, err)
	}
	return v, nil
}

// coerceFloat converts a decoded JSON value to float64. Numeric strings are
// accepted with surrounding whitespace.
func coerceFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to number", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to number", raw)
	}
}

// coerceInt converts a decoded JSON value to int. JSON numbers truncate toward
// zero; strings must be plain integers ("5.7" is rejected where 5.7 is not).
func coerceInt(raw any) (int, error) {
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to integer", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to integer", raw)
	}
}

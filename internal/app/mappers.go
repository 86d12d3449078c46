package app

import (
	"strconv"
	"strings"

	"hotelmap/internal/domain"
)

/********** alias registries (single source of truth) **********/

var hotelAliases = map[string][]string{
	"id":      {"id", "hotel_id", "hotelId"},
	"name":    {"name", "hotel_name", "title"},
	"address": {"address", "address.line", "full_address", "location.address"},
	"city":    {"city", "address.city", "locality"},
	"country": {"country", "address.country", "country_code"},
	"phone":   {"phone", "telephone", "contact.phone"},
	"price":   {"price", "price_display", "rate"},
	"url":     {"url", "website", "link"},
	"lat":     {"geo.lat", "lat", "latitude", "location.lat"},
	"lon":     {"geo.lon", "lon", "lng", "longitude", "location.lon", "location.lng"},
}

var airportAliases = map[string][]string{
	"name": {"name", "airport_name", "iata"},
	"lat":  {"location.lat", "lat", "latitude", "geo.lat"},
	"lon":  {"location.lon", "lon", "lng", "longitude", "geo.lon"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstAliasStr: first non-empty display string for a named alias set.
// Numbers format with strconv so numeric ids, prices and phones survive.
func firstAliasStr(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		switch v := lookupAny(m, p).(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		}
	}
	return ""
}

// getFloatFlexible: number from several paths (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

/********** hotel mapper **********/

// mapHotels normalizes raw hotel payloads. A record with an odd or missing
// field keeps going with the zero value; nothing here fails the whole list.
func mapHotels(in []map[string]any) []domain.HotelRecord {
	out := make([]domain.HotelRecord, 0, len(in))
	for _, h := range in {
		out = append(out, domain.HotelRecord{
			ID:      firstAliasStr(h, hotelAliases, "id"),
			Name:    firstAliasStr(h, hotelAliases, "name"),
			Address: firstAliasStr(h, hotelAliases, "address"),
			City:    firstAliasStr(h, hotelAliases, "city"),
			Country: firstAliasStr(h, hotelAliases, "country"),
			Phone:   firstAliasStr(h, hotelAliases, "phone"),
			Price:   firstAliasStr(h, hotelAliases, "price"),
			URL:     firstAliasStr(h, hotelAliases, "url"),
			Lat:     getFloatFlexible(h, hotelAliases["lat"]...),
			Lon:     getFloatFlexible(h, hotelAliases["lon"]...),
			Reviews: mapReviewRatings(h),
		})
	}
	return out
}

// mapReviewRatings pulls the raw Overall value out of each review's ratings
// block. Values stay untyped; aggregation decides what qualifies.
func mapReviewRatings(h map[string]any) []domain.ReviewRating {
	raw, ok := lookupAny(h, "reviews").([]any)
	if !ok {
		return nil
	}
	out := make([]domain.ReviewRating, 0, len(raw))
	for _, it := range raw {
		rm, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, domain.ReviewRating{Overall: lookupAny(rm, "ratings.Overall")})
	}
	return out
}

/********** airport mapper **********/

// mapAirport returns nil when the payload is missing or carries no usable
// coordinate pair; the pipeline treats both as a failed resolution.
func mapAirport(m map[string]any) *domain.AirportRecord {
	if m == nil {
		return nil
	}
	lat := getFloatFlexible(m, airportAliases["lat"]...)
	lon := getFloatFlexible(m, airportAliases["lon"]...)
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.AirportRecord{
		Name:     firstAliasStr(m, airportAliases, "name"),
		Lat:      *lat,
		Lon:      *lon,
		Accuracy: lookupStr(m, "location.accuracy"),
	}
}

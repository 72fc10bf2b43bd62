// Package locality derives coarse location-context classifications from the
// free-text location string. The classification is a pure keyword heuristic:
// no network access, no state.
package locality

import "strings"

// AreaType categorizes the kind of area the location describes.
type AreaType string

const (
	AreaIndustrial       AreaType = "Industrial"
	AreaCommercial       AreaType = "Commercial"
	AreaRural            AreaType = "Rural"
	AreaUrbanResidential AreaType = "Urban Residential"
)

// TrafficDensity categorizes expected vehicular traffic.
type TrafficDensity string

const (
	TrafficVeryHigh TrafficDensity = "Very High"
	TrafficHigh     TrafficDensity = "High"
	TrafficModerate TrafficDensity = "Moderate"
	TrafficLow      TrafficDensity = "Low"
)

// IndustrialActivity categorizes expected industrial emissions.
type IndustrialActivity string

const (
	IndustrialHigh     IndustrialActivity = "High"
	IndustrialModerate IndustrialActivity = "Moderate"
	IndustrialLow      IndustrialActivity = "Low"
)

// Context is the derived classification triple for a location string.
type Context struct {
	AreaType           AreaType           `json:"area_type"`
	TrafficDensity     TrafficDensity     `json:"traffic_density"`
	IndustrialActivity IndustrialActivity `json:"industrial_activity"`
}

// Each keyword set is evaluated independently, first match in listed order
// wins. Unmatched dimensions fall back to the documented defaults:
// Urban Residential / Moderate / Low.
var (
	areaKeywords = []struct {
		words []string
		value AreaType
	}{
		{[]string{"industrial", "factory", "plant", "refinery"}, AreaIndustrial},
		{[]string{"market", "commercial", "mall", "bazaar", "downtown"}, AreaCommercial},
		{[]string{"village", "rural", "farm"}, AreaRural},
		{[]string{"residential", "colony", "apartment", "society"}, AreaUrbanResidential},
	}

	trafficKeywords = []struct {
		words []string
		value TrafficDensity
	}{
		{[]string{"highway", "junction", "airport", "station", "expressway"}, TrafficVeryHigh},
		{[]string{"market", "commercial", "downtown", "central"}, TrafficHigh},
		{[]string{"village", "rural", "park"}, TrafficLow},
	}

	industrialKeywords = []struct {
		words []string
		value IndustrialActivity
	}{
		{[]string{"industrial", "factory", "plant", "refinery", "mill"}, IndustrialHigh},
		{[]string{"commercial", "market", "warehouse"}, IndustrialModerate},
	}
)

// Classify maps a free-text location string to its context triple.
// Matching is case-insensitive substring containment.
func Classify(location string) Context {
	lowered := strings.ToLower(location)

	ctx := Context{
		AreaType:           AreaUrbanResidential,
		TrafficDensity:     TrafficModerate,
		IndustrialActivity: IndustrialLow,
	}

	for _, entry := range areaKeywords {
		if containsAny(lowered, entry.words) {
			ctx.AreaType = entry.value
			break
		}
	}

	for _, entry := range trafficKeywords {
		if containsAny(lowered, entry.words) {
			ctx.TrafficDensity = entry.value
			break
		}
	}

	for _, entry := range industrialKeywords {
		if containsAny(lowered, entry.words) {
			ctx.IndustrialActivity = entry.value
			break
		}
	}

	return ctx
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

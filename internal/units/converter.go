// Package units provides weight-unit arithmetic and unit-preference
// resolution for inventory quantities.
package units

import "strings"

// Weight is a weight unit of measure.
type Weight string

const (
	Pounds    Weight = "lb"
	Kilograms Weight = "kg"
)

// One pound in kilograms, exact by definition.
const kilogramsPerPound = 0.45359237

// Parse maps common spellings to a Weight. Unknown values report ok=false.
func Parse(s string) (Weight, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lb", "lbs", "pound", "pounds":
		return Pounds, true
	case "kg", "kgs", "kilogram", "kilograms":
		return Kilograms, true
	}
	return "", false
}

func PoundsToKilograms(lb float64) float64 {
	return lb * kilogramsPerPound
}

func KilogramsToPounds(kg float64) float64 {
	return kg / kilogramsPerPound
}

// Convert converts value between weight units. Same-unit conversion is the
// identity.
func Convert(value float64, from, to Weight) float64 {
	if from == to {
		return value
	}
	if from == Pounds && to == Kilograms {
		return PoundsToKilograms(value)
	}
	return KilogramsToPounds(value)
}

// Resolve picks the effective unit: an explicit preference wins, otherwise
// the fallback. An empty fallback resolves to pounds.
func Resolve(pref *Weight, fallback Weight) Weight {
	if pref != nil && (*pref == Pounds || *pref == Kilograms) {
		return *pref
	}
	if fallback == Kilograms {
		return Kilograms
	}
	return Pounds
}

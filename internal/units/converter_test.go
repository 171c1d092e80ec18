package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_KnownSpellings(t *testing.T) {
	for _, s := range []string{"lb", "LBS", " Pounds ", "pound"} {
		unit, ok := Parse(s)
		assert.True(t, ok, s)
		assert.Equal(t, Pounds, unit, s)
	}
	for _, s := range []string{"kg", "KGS", "kilogram", " Kilograms"} {
		unit, ok := Parse(s)
		assert.True(t, ok, s)
		assert.Equal(t, Kilograms, unit, s)
	}
}

func TestParse_UnknownValue(t *testing.T) {
	_, ok := Parse("stone")
	assert.False(t, ok)

	_, ok = Parse("")
	assert.False(t, ok)
}

func TestConvert_PoundsToKilograms(t *testing.T) {
	assert.InDelta(t, 0.45359237, Convert(1, Pounds, Kilograms), 1e-12)
	assert.InDelta(t, 4.5359237, Convert(10, Pounds, Kilograms), 1e-12)
}

func TestConvert_KilogramsToPounds(t *testing.T) {
	assert.InDelta(t, 1, Convert(0.45359237, Kilograms, Pounds), 1e-12)
}

func TestConvert_SameUnitIsIdentity(t *testing.T) {
	assert.Equal(t, 2.5, Convert(2.5, Pounds, Pounds))
	assert.Equal(t, 2.5, Convert(2.5, Kilograms, Kilograms))
}

func TestConvert_RoundTrip(t *testing.T) {
	value := 123.456
	back := Convert(Convert(value, Pounds, Kilograms), Kilograms, Pounds)
	assert.InDelta(t, value, back, 1e-9)
}

func TestResolve_ExplicitPreferenceWins(t *testing.T) {
	kg := Kilograms
	assert.Equal(t, Kilograms, Resolve(&kg, Pounds))
}

func TestResolve_NilPreferenceFallsBack(t *testing.T) {
	assert.Equal(t, Kilograms, Resolve(nil, Kilograms))
	assert.Equal(t, Pounds, Resolve(nil, Pounds))
}

func TestResolve_EmptyFallbackIsPounds(t *testing.T) {
	assert.Equal(t, Pounds, Resolve(nil, Weight("")))
}

// Package units provides explicit unit tags and fixed-factor conversions for
// the dimensional inputs the calculators accept. Every conversion is a single
// multiplication by a hardcoded factor; there is no unit algebra and no
// silent defaulting — unrecognized unit strings are returned as errors so the
// caller decides the fallback.
package units

import (
	"fmt"
	"math"
	"strings"
)

// LengthUnit identifies a linear measurement unit.
type LengthUnit string

const (
	Feet        LengthUnit = "feet"
	Meters      LengthUnit = "meters"
	Inches      LengthUnit = "inches"
	Millimeters LengthUnit = "millimeters"
)

// WeightUnit identifies a weight measurement unit.
type WeightUnit string

const (
	Pounds    WeightUnit = "pounds"
	Kilograms WeightUnit = "kilograms"
)

// Conversion constants. These are the contract: 1 m = 3.28084 ft and
// 1 lb = 0.453592 kg, exactly as printed.
const (
	FeetPerMeter       = 3.28084
	PoundsPerKg        = 1 / 0.453592
	KgPerPound         = 0.453592
	InchesPerFoot      = 12.0
	MillimetersPerInch = 25.4
)

// toFeet holds the multiplier that converts one unit of length to feet.
var toFeet = map[LengthUnit]float64{
	Feet:        1,
	Meters:      FeetPerMeter,
	Inches:      1 / InchesPerFoot,
	Millimeters: FeetPerMeter / 1000,
}

// toInches holds the multiplier that converts one unit of length to inches.
var toInches = map[LengthUnit]float64{
	Feet:        InchesPerFoot,
	Meters:      FeetPerMeter * InchesPerFoot,
	Inches:      1,
	Millimeters: 1 / MillimetersPerInch,
}

// ToFeet converts a magnitude in the given unit to feet.
func ToFeet(value float64, unit LengthUnit) float64 {
	return value * toFeet[unit]
}

// ToInches converts a magnitude in the given unit to inches.
func ToInches(value float64, unit LengthUnit) float64 {
	return value * toInches[unit]
}

// PoundsToKilograms converts pounds to kilograms.
func PoundsToKilograms(lb float64) float64 {
	return lb * KgPerPound
}

// KilogramsToPounds converts kilograms to pounds.
func KilogramsToPounds(kg float64) float64 {
	return kg * PoundsPerKg
}

// ParseLengthUnit resolves a user-supplied unit string to a LengthUnit.
// Matching is case-insensitive and accepts the common short forms.
func ParseLengthUnit(s string) (LengthUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ft", "foot", "feet":
		return Feet, nil
	case "m", "meter", "meters", "metre", "metres":
		return Meters, nil
	case "in", "inch", "inches":
		return Inches, nil
	case "mm", "millimeter", "millimeters", "millimetre", "millimetres":
		return Millimeters, nil
	}
	return "", fmt.Errorf("unknown length unit %q", s)
}

// ParseWeightUnit resolves a user-supplied unit string to a WeightUnit.
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lb", "lbs", "pound", "pounds":
		return Pounds, nil
	case "kg", "kgs", "kilogram", "kilograms":
		return Kilograms, nil
	}
	return "", fmt.Errorf("unknown weight unit %q", s)
}

// Round2 rounds to two decimal places, the precision used for reported
// volumes, weights and dollar amounts.
func Round2(v float64) float64 {
	return roundTo(v, 100)
}

// Round4 rounds to four decimal places, used for cross-sectional areas.
func Round4(v float64) float64 {
	return roundTo(v, 10000)
}

func roundTo(v, scale float64) float64 {
	return math.Round(v*scale) / scale
}

// Package concrete estimates concrete volume, cost and bag counts for slab
// pours. Inputs are three linear dimensions in a single unit; output volume
// is reported in both cubic yards and cubic meters.
package concrete

import (
	"fmt"
	"math"

	"github.com/buildwise/buildwise/internal/units"
)

// ErrUnsupportedUnit is returned when a cost calculation is asked to price a
// volume in a unit it does not support.
var ErrUnsupportedUnit = fmt.Errorf("unsupported pricing unit")

// Volume conversion factors applied to the raw cubic-foot product. Each is
// applied independently, not chained through the other.
const (
	cubicFeetPerCubicYard   = 27.0
	cubicMetersPerCubicFoot = 0.0283168
)

// PricingUnit selects how a concrete volume is priced.
type PricingUnit string

const (
	PerCubicYard  PricingUnit = "cubic_yard"
	PerCubicMeter PricingUnit = "cubic_meter"
)

// VolumeResult is the outcome of a volume calculation. RawCubicFeet keeps
// full precision for downstream math; the yard and meter figures are rounded
// for display.
type VolumeResult struct {
	CubicYards   float64 `json:"cubic_yards"`
	CubicMeters  float64 `json:"cubic_meters"`
	RawCubicFeet float64 `json:"raw_cubic_feet"`
}

// Bag coverage constants in cubic feet per bag. Non-standard bag sizes scale
// linearly from the anchor size for their unit.
const (
	coverage80lb = 0.6
	coverage60lb = 0.45
	coverage50kg = 0.5
)

// Calculator computes concrete quantities. It holds no mutable state and is
// safe for concurrent use.
type Calculator struct{}

// NewCalculator returns a concrete calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// CalculateVolume multiplies the three dimensions after converting them to
// feet, then converts the product volume to cubic yards and cubic meters.
// Zero or negative dimensions are carried through arithmetically; the result
// is simply zero or negative.
func (c *Calculator) CalculateVolume(length, width, depth float64, unit units.LengthUnit) VolumeResult {
	raw := units.ToFeet(length, unit) * units.ToFeet(width, unit) * units.ToFeet(depth, unit)

	return VolumeResult{
		CubicYards:   units.Round2(raw / cubicFeetPerCubicYard),
		CubicMeters:  units.Round2(raw * cubicMetersPerCubicFoot),
		RawCubicFeet: raw,
	}
}

// CalculateCost prices a volume at pricePerUnit for the requested pricing
// unit, rounded to cents. Units other than cubic yards or cubic meters are
// rejected with ErrUnsupportedUnit.
func (c *Calculator) CalculateCost(volume VolumeResult, pricePerUnit float64, unit PricingUnit) (float64, error) {
	var volumeInUnit float64
	switch unit {
	case PerCubicYard:
		volumeInUnit = volume.RawCubicFeet / cubicFeetPerCubicYard
	case PerCubicMeter:
		volumeInUnit = volume.RawCubicFeet * cubicMetersPerCubicFoot
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, unit)
	}

	return units.Round2(pricePerUnit * volumeInUnit), nil
}

// BagsNeeded returns the whole number of bags required to cover the volume.
// Partial bags always round up. A non-positive bag size covers nothing and
// yields zero bags; dividing by its zero coverage would otherwise overflow
// the int conversion.
func (c *Calculator) BagsNeeded(volume VolumeResult, bagSize float64, bagUnit units.WeightUnit) int {
	if bagSize <= 0 {
		return 0
	}

	var coverage float64
	switch bagUnit {
	case units.Kilograms:
		if bagSize == 50 {
			coverage = coverage50kg
		} else {
			coverage = bagSize / 50 * coverage50kg
		}
	default:
		switch bagSize {
		case 80:
			coverage = coverage80lb
		case 60:
			coverage = coverage60lb
		default:
			coverage = bagSize / 80 * coverage80lb
		}
	}

	return int(math.Ceil(volume.RawCubicFeet / coverage))
}

// Package steel computes weight and cost for structural steel sections. Each
// supported cross-section resolves to an area in square inches; weight per
// foot follows from the density of steel, and totals scale by length and
// piece count.
package steel

import (
	"github.com/buildwise/buildwise/internal/units"
)

// DensityPoundsPerCubicFoot is the density of carbon steel. Weight per foot
// for a section is area (in²) × density / 144.
const DensityPoundsPerCubicFoot = 490.0

// defaultPricePerPound applies when a steel type has no price table entry.
const defaultPricePerPound = 0.90

// Type is a steel product category.
type Type string

const (
	TypeRebar          Type = "rebar"
	TypeAngle          Type = "angle"
	TypeChannel        Type = "channel"
	TypeIBeam          Type = "i_beam"
	TypeWideFlange     Type = "wide_flange"
	TypeHSSRectangular Type = "hss_rectangular"
	TypeHSSSquare      Type = "hss_square"
	TypeHSSRound       Type = "hss_round"
	TypeFlatBar        Type = "flat_bar"
	TypeRoundBar       Type = "round_bar"
	TypeSquareBar      Type = "square_bar"
	TypePlate          Type = "plate"
	TypeSheet          Type = "sheet"
	TypeTubing         Type = "tubing"
	TypePipe           Type = "pipe"
)

// AllTypes lists every steel type, in catalog order.
var AllTypes = []Type{
	TypeRebar, TypeAngle, TypeChannel, TypeIBeam, TypeWideFlange,
	TypeHSSRectangular, TypeHSSSquare, TypeHSSRound, TypeFlatBar,
	TypeRoundBar, TypeSquareBar, TypePlate, TypeSheet, TypeTubing, TypePipe,
}

// Grade is an ASTM steel grade.
type Grade string

const (
	GradeA36     Grade = "a36"
	GradeA53     Grade = "a53"
	GradeA500    Grade = "a500"
	GradeA572_50 Grade = "a572_50"
	GradeA992    Grade = "a992"
	GradeA1011   Grade = "a1011"
	GradeA1018   Grade = "a1018"
	Grade40      Grade = "grade_40"
	Grade60      Grade = "grade_60"
)

// AllGrades lists every steel grade.
var AllGrades = []Grade{
	GradeA36, GradeA53, GradeA500, GradeA572_50, GradeA992,
	GradeA1011, GradeA1018, Grade40, Grade60,
}

// WeightResult is the outcome of a weight calculation. WeightPounds is
// always pounds; Weight repeats it converted to the requested unit.
type WeightResult struct {
	WeightPerFoot float64           `json:"weight_per_foot"`
	WeightPounds  float64           `json:"weight_pounds"`
	Weight        float64           `json:"weight"`
	WeightUnit    units.WeightUnit  `json:"weight_unit"`
	Length        float64           `json:"length"`
	LengthUnit    units.LengthUnit  `json:"length_unit"`
	Quantity      int               `json:"quantity"`
	AreaSqInches  float64           `json:"area_sq_inches"`
	SteelType     Type              `json:"steel_type"`
}

// WeightParams collects the inputs to CalculateWeight. Zero-value units
// default to feet for length, inches for dimensions and pounds for weight.
type WeightParams struct {
	Type          Type
	Shape         Shape
	Length        float64
	Quantity      int
	LengthUnit    units.LengthUnit
	DimensionUnit units.LengthUnit
	WeightUnit    units.WeightUnit
}

// Calculator computes steel weights and prices. The price table is fixed at
// construction; a Calculator is safe for concurrent use.
type Calculator struct {
	prices map[Type]typePrices
}

// typePrices maps grades to price per pound with a type-level default.
type typePrices struct {
	byGrade      map[Grade]float64
	defaultPrice float64
}

// NewCalculator returns a steel calculator with the default price table.
func NewCalculator() *Calculator {
	return &Calculator{
		prices: map[Type]typePrices{
			TypeRebar: {
				byGrade:      map[Grade]float64{Grade40: 0.65, Grade60: 0.75},
				defaultPrice: 0.70,
			},
			TypeAngle: {
				byGrade:      map[Grade]float64{GradeA36: 0.85},
				defaultPrice: 0.85,
			},
			TypeIBeam: {
				byGrade:      map[Grade]float64{GradeA36: 0.90, GradeA992: 0.95},
				defaultPrice: 0.92,
			},
			TypeWideFlange: {
				byGrade:      map[Grade]float64{GradeA992: 1.00},
				defaultPrice: 1.00,
			},
		},
	}
}

// CalculateWeight resolves the shape to a cross-section and scales by length
// and quantity. Weight per foot and total weight are rounded to 2 decimals,
// area to 4.
func (c *Calculator) CalculateWeight(p WeightParams) WeightResult {
	if p.LengthUnit == "" {
		p.LengthUnit = units.Feet
	}
	if p.DimensionUnit == "" {
		p.DimensionUnit = units.Inches
	}
	if p.WeightUnit == "" {
		p.WeightUnit = units.Pounds
	}
	if p.Quantity == 0 {
		p.Quantity = 1
	}

	sec := crossSection(p.Shape, p.DimensionUnit)
	lengthFeet := units.ToFeet(p.Length, p.LengthUnit)
	totalPounds := sec.weightPerFoot * lengthFeet * float64(p.Quantity)

	weight := totalPounds
	if p.WeightUnit == units.Kilograms {
		weight = units.PoundsToKilograms(totalPounds)
	}

	return WeightResult{
		WeightPerFoot: units.Round2(sec.weightPerFoot),
		WeightPounds:  units.Round2(totalPounds),
		Weight:        units.Round2(weight),
		WeightUnit:    p.WeightUnit,
		Length:        p.Length,
		LengthUnit:    p.LengthUnit,
		Quantity:      p.Quantity,
		AreaSqInches:  units.Round4(sec.areaSqInches),
		SteelType:     p.Type,
	}
}

// CalculateCost prices a weight in pounds for a steel type and grade. The
// lookup tries (type, grade), then the type-level default, then the global
// default price. A non-nil pricePerPound overrides the table entirely. An
// empty grade resolves to the customary grade for the type: grade 60 for
// rebar, A992 for beam shapes, A36 otherwise.
func (c *Calculator) CalculateCost(weightPounds float64, steelType Type, grade Grade, pricePerPound *float64) float64 {
	if pricePerPound != nil {
		return units.Round2(weightPounds * *pricePerPound)
	}

	if grade == "" {
		grade = defaultGradeFor(steelType)
	}

	price := defaultPricePerPound
	if tp, ok := c.prices[steelType]; ok {
		price = tp.defaultPrice
		if p, ok := tp.byGrade[grade]; ok {
			price = p
		}
	}

	return units.Round2(weightPounds * price)
}

func defaultGradeFor(t Type) Grade {
	switch t {
	case TypeRebar:
		return Grade60
	case TypeIBeam, TypeWideFlange:
		return GradeA992
	default:
		return GradeA36
	}
}

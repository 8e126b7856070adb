package steel

// RebarProps holds the standard properties of a rebar size: nominal diameter
// in inches, weight per foot in pounds and cross-sectional area in square
// inches.
type RebarProps struct {
	BarNumber     int     `json:"bar_number"`
	Diameter      float64 `json:"diameter"`
	WeightPerFoot float64 `json:"weight_per_foot"`
	AreaSqInches  float64 `json:"area_sq_inches"`
}

// rebarTable encodes the ASTM standard rebar sizes. These are tabulated
// industry values, not derived from the bar-number/8 diameter rule; cost and
// weight results depend on them matching the standard exactly.
var rebarTable = map[int]RebarProps{
	3:  {BarNumber: 3, Diameter: 0.375, WeightPerFoot: 0.376, AreaSqInches: 0.11},
	4:  {BarNumber: 4, Diameter: 0.500, WeightPerFoot: 0.668, AreaSqInches: 0.20},
	5:  {BarNumber: 5, Diameter: 0.625, WeightPerFoot: 1.043, AreaSqInches: 0.31},
	6:  {BarNumber: 6, Diameter: 0.750, WeightPerFoot: 1.502, AreaSqInches: 0.44},
	7:  {BarNumber: 7, Diameter: 0.875, WeightPerFoot: 2.044, AreaSqInches: 0.60},
	8:  {BarNumber: 8, Diameter: 1.000, WeightPerFoot: 2.670, AreaSqInches: 0.79},
	9:  {BarNumber: 9, Diameter: 1.128, WeightPerFoot: 3.400, AreaSqInches: 1.00},
	10: {BarNumber: 10, Diameter: 1.270, WeightPerFoot: 4.303, AreaSqInches: 1.27},
	11: {BarNumber: 11, Diameter: 1.410, WeightPerFoot: 5.313, AreaSqInches: 1.56},
	14: {BarNumber: 14, Diameter: 1.693, WeightPerFoot: 7.650, AreaSqInches: 2.25},
	18: {BarNumber: 18, Diameter: 2.257, WeightPerFoot: 13.600, AreaSqInches: 4.00},
}

// RebarProperties returns the standard properties for a bar number. Unknown
// bar numbers fall back to #4, the most common size.
func RebarProperties(barNumber int) RebarProps {
	if props, ok := rebarTable[barNumber]; ok {
		return props
	}
	return rebarTable[4]
}

package lumber

// StandardSize describes a common nominal lumber cross-section.
type StandardSize struct {
	Thickness   float64 `json:"thickness"`
	Width       float64 `json:"width"`
	Description string  `json:"description"`
}

// PlywoodSize describes a common plywood sheet.
type PlywoodSize struct {
	Thickness   float64 `json:"thickness"`
	Width       float64 `json:"width"`
	Length      float64 `json:"length"`
	Description string  `json:"description"`
}

// StandardSizes lists the dimensional lumber, stock lengths and plywood
// sheets commonly carried by lumberyards.
type StandardSizes struct {
	DimensionalLumber []StandardSize `json:"dimensional_lumber"`
	StandardLengths   []int          `json:"standard_lengths"`
	Plywood           []PlywoodSize  `json:"plywood"`
}

// GetStandardSizes returns the catalog of standard lumber sizes.
func GetStandardSizes() StandardSizes {
	return StandardSizes{
		DimensionalLumber: []StandardSize{
			{Thickness: 2, Width: 2, Description: "2×2"},
			{Thickness: 2, Width: 3, Description: "2×3"},
			{Thickness: 2, Width: 4, Description: "2×4"},
			{Thickness: 2, Width: 6, Description: "2×6"},
			{Thickness: 2, Width: 8, Description: "2×8"},
			{Thickness: 2, Width: 10, Description: "2×10"},
			{Thickness: 2, Width: 12, Description: "2×12"},
			{Thickness: 4, Width: 4, Description: "4×4"},
			{Thickness: 4, Width: 6, Description: "4×6"},
			{Thickness: 6, Width: 6, Description: "6×6"},
		},
		StandardLengths: []int{8, 10, 12, 14, 16, 18, 20, 22, 24},
		Plywood: []PlywoodSize{
			{Thickness: 0.25, Width: 48, Length: 96, Description: `1/4" × 4' × 8'`},
			{Thickness: 0.5, Width: 48, Length: 96, Description: `1/2" × 4' × 8'`},
			{Thickness: 0.75, Width: 48, Length: 96, Description: `3/4" × 4' × 8'`},
		},
	}
}

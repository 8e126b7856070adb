package estimate

import (
	"math"
	"strings"

	"github.com/buildwise/buildwise/internal/units"
)

// projectRates carry the per-square-foot labor rate and the days needed per
// thousand square feet for a project category.
type projectRates struct {
	laborPerSqFt    float64
	daysPerThousand float64
}

var ratesByProjectType = map[string]projectRates{
	"residential": {laborPerSqFt: 30, daysPerThousand: 15},
	"commercial":  {laborPerSqFt: 45, daysPerThousand: 20},
	"industrial":  {laborPerSqFt: 55, daysPerThousand: 25},
	"renovation":  {laborPerSqFt: 40, daysPerThousand: 18},
}

var defaultRates = projectRates{laborPerSqFt: 35, daysPerThousand: 18}

// LaborEstimate is a labor cost band for a project.
type LaborEstimate struct {
	ProjectType   string  `json:"project_type"`
	SquareFeet    float64 `json:"square_feet"`
	Stories       int     `json:"stories"`
	EstimatedCost float64 `json:"estimated_cost"`
	MinCost       float64 `json:"min_cost"`
	MaxCost       float64 `json:"max_cost"`
	Confidence    float64 `json:"confidence"`
	Source        string  `json:"source"`
}

// TimelineEstimate is a duration band for a project, in days.
type TimelineEstimate struct {
	ProjectType   string  `json:"project_type"`
	SquareFeet    float64 `json:"square_feet"`
	Stories       int     `json:"stories"`
	EstimatedDays int     `json:"estimated_days"`
	MinDays       int     `json:"min_days"`
	MaxDays       int     `json:"max_days"`
	Confidence    float64 `json:"confidence"`
	Source        string  `json:"source"`
}

// EstimateLaborCost computes a labor cost band from project size. Each story
// above the first adds 10% to the rate. The band is ±15% at confidence 0.7.
func (e *Estimator) EstimateLaborCost(projectType string, squareFeet float64, stories int) LaborEstimate {
	if stories < 1 {
		stories = 1
	}
	rates := ratesFor(projectType)

	cost := squareFeet * rates.laborPerSqFt * storyUplift(stories, 0.10)
	return LaborEstimate{
		ProjectType:   projectType,
		SquareFeet:    squareFeet,
		Stories:       stories,
		EstimatedCost: units.Round2(cost),
		MinCost:       units.Round2(cost * 0.85),
		MaxCost:       units.Round2(cost * 1.15),
		Confidence:    0.7,
		Source:        SourceFallback,
	}
}

// EstimateTimeline computes a duration band from project size. Each story
// above the first adds 20% to the duration. Days are rounded up; the band is
// ±20% at confidence 0.7.
func (e *Estimator) EstimateTimeline(projectType string, squareFeet float64, stories int) TimelineEstimate {
	if stories < 1 {
		stories = 1
	}
	rates := ratesFor(projectType)

	days := squareFeet / 1000 * rates.daysPerThousand * storyUplift(stories, 0.20)
	return TimelineEstimate{
		ProjectType:   projectType,
		SquareFeet:    squareFeet,
		Stories:       stories,
		EstimatedDays: ceilDays(days),
		MinDays:       ceilDays(days * 0.8),
		MaxDays:       ceilDays(days * 1.2),
		Confidence:    0.7,
		Source:        SourceFallback,
	}
}

func ratesFor(projectType string) projectRates {
	if r, ok := ratesByProjectType[strings.ToLower(strings.TrimSpace(projectType))]; ok {
		return r
	}
	return defaultRates
}

func storyUplift(stories int, perStory float64) float64 {
	return 1 + float64(stories-1)*perStory
}

func ceilDays(days float64) int {
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(days))
}

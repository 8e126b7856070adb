// Package estimate produces material cost, labor cost and timeline estimates.
// Without an external predictor the estimator is fully deterministic: base
// price × quantity × location multiplier, with a fixed confidence band.
package estimate

import (
	"context"
	"strings"

	"github.com/buildwise/buildwise/internal/units"
)

// Sources identify how an estimate was produced.
const (
	SourceFallback = "fallback_calculation"
	SourceModel    = "ai_model"
)

// defaultBasePrices apply when the caller supplies no price overrides. Keys
// follow the settings-file naming.
var defaultBasePrices = map[string]float64{
	"concrete_per_yard":  150.0,
	"lumber_pine_per_bf": 3.0,
	"steel_per_pound":    0.85,
}

// priceKeyForMaterial maps a material type to its base price key.
var priceKeyForMaterial = map[string]string{
	"concrete": "concrete_per_yard",
	"lumber":   "lumber_pine_per_bf",
	"steel":    "steel_per_pound",
}

// defaultUnknownPrice applies to material types with no base price entry.
const defaultUnknownPrice = 100.0

// locationMultipliers adjust the base price by region. Unlisted locations use
// the national multiplier.
var locationMultipliers = map[string]float64{
	"new york":      1.2,
	"california":    1.15,
	"texas":         0.9,
	"florida":       0.95,
	"illinois":      1.05,
	"united states": 1.0,
}

// Request holds the inputs to a material cost estimate.
type Request struct {
	MaterialType string  `json:"material_type"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Location     string  `json:"location"`
}

// Result is a material cost estimate with a confidence band.
type Result struct {
	MaterialType  string  `json:"material_type"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	Location      string  `json:"location"`
	EstimatedCost float64 `json:"estimated_cost"`
	MinCost       float64 `json:"min_cost"`
	MaxCost       float64 `json:"max_cost"`
	Confidence    float64 `json:"confidence"`
	Source        string  `json:"source"`
}

// Predictor is an external cost model. Implementations may call remote
// services; a failure makes the estimator fall back to its deterministic
// path rather than surface an error.
type Predictor interface {
	PredictCost(ctx context.Context, req Request) (float64, error)
}

// Estimator produces cost, labor and timeline estimates. Zero predictor is
// valid and means the deterministic path is always used.
type Estimator struct {
	basePrices map[string]float64
	predictor  Predictor
}

// NewEstimator builds an estimator. Entries in priceOverrides replace the
// matching default base prices; unknown keys are carried so custom material
// types can be priced. A nil predictor disables the model path.
func NewEstimator(priceOverrides map[string]float64, predictor Predictor) *Estimator {
	prices := make(map[string]float64, len(defaultBasePrices)+len(priceOverrides))
	for k, v := range defaultBasePrices {
		prices[k] = v
	}
	for k, v := range priceOverrides {
		prices[k] = v
	}
	return &Estimator{basePrices: prices, predictor: predictor}
}

// Estimate produces a material cost estimate. With a working predictor the
// band is ±10% at confidence 0.8; the deterministic fallback uses ±15% at
// confidence 0.7.
func (e *Estimator) Estimate(ctx context.Context, req Request) Result {
	if req.Location == "" {
		req.Location = "United States"
	}

	if e.predictor != nil {
		if cost, err := e.predictor.PredictCost(ctx, req); err == nil && cost > 0 {
			return e.result(req, cost, 0.10, 0.8, SourceModel)
		}
	}

	base := defaultUnknownPrice
	if key, ok := priceKeyForMaterial[strings.ToLower(strings.TrimSpace(req.MaterialType))]; ok {
		if p, ok := e.basePrices[key]; ok {
			base = p
		}
	}

	cost := base * req.Quantity * locationMultiplier(req.Location)
	return e.result(req, cost, 0.15, 0.7, SourceFallback)
}

func (e *Estimator) result(req Request, cost, band, confidence float64, source string) Result {
	return Result{
		MaterialType:  req.MaterialType,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		Location:      req.Location,
		EstimatedCost: units.Round2(cost),
		MinCost:       units.Round2(cost * (1 - band)),
		MaxCost:       units.Round2(cost * (1 + band)),
		Confidence:    confidence,
		Source:        source,
	}
}

func locationMultiplier(location string) float64 {
	if m, ok := locationMultipliers[strings.ToLower(strings.TrimSpace(location))]; ok {
		return m
	}
	return 1.0
}

package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/buildwise/buildwise/internal/config"
	"github.com/buildwise/buildwise/internal/estimate"
)

func aiEstimateCmd() *cobra.Command {
	var (
		materialType string
		quantity     float64
		unit         string
		location     string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "ai-estimate",
		Short: "Estimate material cost with a confidence band",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			if location == "" {
				location = settings.DefaultLocation
			}

			estimator := estimate.NewEstimator(settings.MaterialPrices, nil)
			result := estimator.Estimate(cmd.Context(), estimate.Request{
				MaterialType: materialType,
				Quantity:     quantity,
				Unit:         unit,
				Location:     location,
			})

			rows := []kv{
				kvString("Material", result.MaterialType),
				kvFloat("Quantity", result.Quantity),
				kvString("Location", result.Location),
				kvMoney("Estimated cost", result.EstimatedCost),
				kvMoney("Low", result.MinCost),
				kvMoney("High", result.MaxCost),
				kvFloat("Confidence", result.Confidence),
				kvString("Source", result.Source),
			}
			return printResults(rows, output)
		},
	}

	cmd.Flags().StringVar(&materialType, "material-type", "", "material type (concrete, lumber, steel, ...)")
	cmd.Flags().Float64VarP(&quantity, "quantity", "q", 0, "quantity to price")
	cmd.Flags().StringVarP(&unit, "unit", "u", "cubic_yard", "quantity unit label")
	cmd.Flags().StringVar(&location, "location", "", "project location (defaults to settings)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write results to a CSV file")
	_ = cmd.MarkFlagRequired("material-type")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}

func settingsCmd() *cobra.Command {
	var (
		list          bool
		openaiKey     string
		projectDir    string
		location      string
		priceConcrete float64
		priceLumber   float64
		priceSteel    float64
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update buildwise settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("openai-key") {
				settings.OpenAIAPIKey = openaiKey
				changed = true
			}
			if cmd.Flags().Changed("project-dir") {
				settings.ProjectDir = projectDir
				changed = true
			}
			if cmd.Flags().Changed("location") {
				settings.DefaultLocation = location
				changed = true
			}
			setPrice := func(flag, key string, value float64) {
				if cmd.Flags().Changed(flag) {
					if settings.MaterialPrices == nil {
						settings.MaterialPrices = map[string]float64{}
					}
					settings.MaterialPrices[key] = value
					changed = true
				}
			}
			setPrice("price-concrete", "concrete_per_yard", priceConcrete)
			setPrice("price-lumber", "lumber_pine_per_bf", priceLumber)
			setPrice("price-steel", "steel_per_pound", priceSteel)

			if changed {
				if err := config.Save(settings); err != nil {
					return err
				}
				cmd.Println("Settings saved.")
			}

			if list || !changed {
				rows := []kv{
					kvString("Project directory", settings.ProjectDir),
					kvString("Default location", settings.DefaultLocation),
					kvString("Theme", settings.Theme),
					kvString("OpenAI key set", yesNo(settings.OpenAIAPIKey != "")),
				}
				rows = append(rows, priceRows(settings.MaterialPrices)...)
				return printResults(rows, "")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "show current settings")
	cmd.Flags().StringVar(&openaiKey, "openai-key", "", "set the OpenAI API key")
	cmd.Flags().StringVar(&projectDir, "project-dir", "", "set the project storage directory")
	cmd.Flags().StringVar(&location, "location", "", "set the default estimation location")
	cmd.Flags().Float64Var(&priceConcrete, "price-concrete", 0, "set the concrete base price per cubic yard")
	cmd.Flags().Float64Var(&priceLumber, "price-lumber", 0, "set the pine base price per board foot")
	cmd.Flags().Float64Var(&priceSteel, "price-steel", 0, "set the steel base price per pound")

	return cmd
}

// priceRows renders the material price table in key order so repeated runs
// print the same listing.
func priceRows(prices map[string]float64) []kv {
	keys := make([]string, 0, len(prices))
	for key := range prices {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]kv, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, kvMoney("Price "+key, prices[key]))
	}
	return rows
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

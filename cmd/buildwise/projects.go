package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buildwise/buildwise/internal/config"
	"github.com/buildwise/buildwise/internal/project"
)

func openStorage() (*project.Storage, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	return project.NewStorage(settings.ProjectDir, nil)
}

func projectCmd() *cobra.Command {
	var (
		list        bool
		create      string
		description string
		location    string
		view        string
		deleteName  string
		addTo       string
		exportName  string
		format      string
		output      string

		materialType     string
		materialName     string
		materialQuantity float64
		materialUnit     string
		materialCost     float64
		materialNotes    string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage saved estimation projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			storage, err := openStorage()
			if err != nil {
				return err
			}

			switch {
			case list:
				return runProjectList(storage)
			case create != "":
				p := project.New(create, description, location)
				if err := storage.Save(p); err != nil {
					return err
				}
				fmt.Printf("Created project %q\n", p.Name)
				return nil
			case view != "":
				return runProjectView(storage, view)
			case deleteName != "":
				if err := storage.Delete(deleteName); err != nil {
					return err
				}
				fmt.Printf("Deleted project %q\n", deleteName)
				return nil
			case addTo != "":
				if strings.TrimSpace(materialName) == "" {
					return fmt.Errorf("--material-name is required")
				}
				p, err := storage.Load(addTo)
				if err != nil {
					return err
				}
				var costPtr *float64
				if cmd.Flags().Changed("material-cost") {
					costPtr = &materialCost
				}
				m := p.AddMaterial(project.Material{
					Type:     materialType,
					Name:     materialName,
					Quantity: materialQuantity,
					Unit:     materialUnit,
					Cost:     costPtr,
					Notes:    materialNotes,
				})
				if err := storage.Save(p); err != nil {
					return err
				}
				fmt.Printf("Added %q to project %q\n", m.Name, p.Name)
				return nil
			case exportName != "":
				return runProjectExport(storage, exportName, format, output)
			default:
				return fmt.Errorf("one of --list, --create, --view, --delete, --add-material or --export is required")
			}
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list saved projects")
	cmd.Flags().StringVar(&create, "create", "", "create a project with the given name")
	cmd.Flags().StringVar(&description, "description", "", "project description (with --create)")
	cmd.Flags().StringVar(&location, "location", "", "project location (with --create)")
	cmd.Flags().StringVar(&view, "view", "", "show a project and its materials")
	cmd.Flags().StringVar(&deleteName, "delete", "", "delete a project")
	cmd.Flags().StringVar(&addTo, "add-material", "", "add a material to the named project")
	cmd.Flags().StringVar(&exportName, "export", "", "export the named project")
	cmd.Flags().StringVar(&format, "format", "csv", "export format (csv or xlsx)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "export file path")

	cmd.Flags().StringVar(&materialType, "material-type", "", "material type tag")
	cmd.Flags().StringVar(&materialName, "material-name", "", "material display name")
	cmd.Flags().Float64Var(&materialQuantity, "material-quantity", 0, "material quantity")
	cmd.Flags().StringVar(&materialUnit, "material-unit", "", "material quantity unit")
	cmd.Flags().Float64Var(&materialCost, "material-cost", 0, "material cost")
	cmd.Flags().StringVar(&materialNotes, "material-notes", "", "material notes")

	return cmd
}

func runProjectList(storage *project.Storage) error {
	projects, err := storage.List()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("No saved projects.")
		return nil
	}
	for _, p := range projects {
		fmt.Printf("  %-30s  %2d materials  $%.2f\n", p.Name, len(p.Materials), p.TotalCost())
	}
	return nil
}

func runProjectView(storage *project.Storage, name string) error {
	p, err := storage.Load(name)
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s\n", p.Name)
	if p.Description != "" {
		fmt.Printf("Description: %s\n", p.Description)
	}
	if p.Location != "" {
		fmt.Printf("Location: %s\n", p.Location)
	}
	fmt.Printf("Created: %s\n", p.CreatedAt.Format("2006-01-02"))
	fmt.Println()

	if len(p.Materials) == 0 {
		fmt.Println("No materials yet.")
		return nil
	}
	for _, m := range p.Materials {
		cost := "-"
		if m.Cost != nil {
			cost = fmt.Sprintf("$%.2f", *m.Cost)
		}
		fmt.Printf("  %-25s %-12s %10g %-12s %s\n", m.Name, m.Type, m.Quantity, m.Unit, cost)
	}
	fmt.Printf("\nTotal: $%.2f\n", p.TotalCost())
	return nil
}

func runProjectExport(storage *project.Storage, name, format, output string) error {
	p, err := storage.Load(name)
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.ReplaceAll(name, " ", "_") + "." + format
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	switch format {
	case "csv":
		err = project.ExportCSV(f, p)
	case "xlsx":
		err = project.ExportXLSX(f, p)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported project %q to %s\n", name, output)
	return nil
}

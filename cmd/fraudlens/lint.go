package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fraudlens/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog tooling for the content pipeline",
}

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Validate a catalog file",
	Long: `Validate a catalog YAML file against the catalog invariants
(unique tier ids, testimonial rating range, statistics for every
selectable region). With no file, checks the built-in catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			cat *catalog.Catalog
			err error
			src = "built-in catalog"
		)
		if len(args) == 1 {
			src = args[0]
			cat, err = catalog.Load(args[0])
		} else {
			cat = catalog.Default()
			err = cat.Validate()
		}
		if err != nil {
			color.Red("✗ %s", src)
			fmt.Println(err)
			return errors.New("catalog invalid")
		}
		color.Green("✓ %s", src)
		fmt.Printf("%d tiers, %d testimonials, %d regions, %d feature tabs\n",
			len(cat.Tiers), len(cat.Testimonials), len(cat.RegionalStats), len(cat.FeatureTabs))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(catalogCmd)
}

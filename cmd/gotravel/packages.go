package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/client"
	"github.com/Faizan-Ansari1000/Go-Travel/internal/domain"
)

var packagesCmd = &cobra.Command{
	Use:   "packages [query]",
	Short: "Browse the travel package catalog",
	Long: `Packages lists the catalog from the backend, optionally filtered by a
free-text query matched against city, province and trip type.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPackages,
}

func init() {
	packagesCmd.Flags().Int("page", 1, "Page number")
	packagesCmd.Flags().Int("limit", 20, "Results per page")
	rootCmd.AddCommand(packagesCmd)
}

func runPackages(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	api, _ := newAPIClient(cfg, logger)

	var query string
	if len(args) == 1 {
		query = args[0]
	}
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	results, err := api.Packages(cmd.Context(), query, domain.NewPaginationParams(&page, &limit))
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), client.UserMessage(err))
		return err
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No packages found")
		return nil
	}
	for _, p := range results {
		fmt.Fprintf(out, "%3d  %-12s %-18s %-10s %d days  PKR %d  %s (%d★ %.1f)\n",
			p.ID, p.City, p.Province, p.TripType, p.Days, p.PricePKR,
			p.Hotel.Name, p.Hotel.Stars, p.Hotel.Rating)
	}
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/core/schedule"
	"github.com/ocroft/shiftdesk/pkg/core/services"
)

// ListWorkersCmd creates the listWorkers command
func ListWorkersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listWorkers",
		Short: "List the restaurant's workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, err := services.FetchWorkers(app.Ctx, app.API, app.Store, app.Logger, app.Cfg.RestaurantID)
			if err != nil {
				return err
			}

			printWorkerTable(workers)

			stats := schedule.ComputeWorkerStats(workers)
			fmt.Printf("Total: %d   Active: %d   Inactive: %d\n", stats.Total, stats.Active, stats.Inactive)
			for role, n := range stats.PerRole {
				fmt.Printf("  %-10s %d\n", string(role), n)
			}
			fmt.Println()

			return nil
		},
	}
}

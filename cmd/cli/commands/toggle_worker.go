package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/core/services"
)

// ToggleWorkerCmd creates the toggleWorker command
func ToggleWorkerCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggleWorker <worker_id>",
		Short: "Toggle a worker between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workerID, err := parseID(args[0], "worker_id")
			if err != nil {
				return err
			}

			worker, err := services.ToggleWorkerStatus(app.Ctx, app.API, app.Store, app.Logger, workerID)
			if err != nil {
				return err
			}

			state := "inactive"
			if worker.Active {
				state = "active"
			}
			fmt.Printf("\n✓ %s is now %s.\n\n", worker.Name, state)
			return nil
		},
	}
}

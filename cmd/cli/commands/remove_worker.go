package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/core/services"
)

// RemoveWorkerCmd creates the removeWorker command
func RemoveWorkerCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeWorker <worker_id>",
		Short: "Remove a worker (prefer toggleWorker to keep their history)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workerID, err := parseID(args[0], "worker_id")
			if err != nil {
				return err
			}

			if err := services.DeleteWorker(app.Ctx, app.API, app.Store, app.Logger, workerID); err != nil {
				return err
			}

			fmt.Printf("\n✓ Worker %d removed.\n\n", workerID)
			return nil
		},
	}
}

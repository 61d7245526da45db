package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/api"
	"github.com/ocroft/shiftdesk/pkg/core/model"
	"github.com/ocroft/shiftdesk/pkg/core/services"
)

// UpdateWorkerCmd creates the updateWorker command
func UpdateWorkerCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateWorker <worker_id>",
		Short: "Edit a worker's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workerID, err := parseID(args[0], "worker_id")
			if err != nil {
				return err
			}

			var req api.UpdateWorkerRequest
			if cmd.Flags().Changed("name") {
				v, _ := cmd.Flags().GetString("name")
				req.Name = &v
			}
			if cmd.Flags().Changed("email") {
				v, _ := cmd.Flags().GetString("email")
				req.Email = &v
			}
			if cmd.Flags().Changed("phone") {
				v, _ := cmd.Flags().GetString("phone")
				req.Phone = &v
			}
			if cmd.Flags().Changed("role") {
				raw, _ := cmd.Flags().GetString("role")
				r := model.Role(raw)
				req.Role = &r
			}

			if req == (api.UpdateWorkerRequest{}) {
				return fmt.Errorf("nothing to update: set at least one flag")
			}

			worker, err := services.UpdateWorker(app.Ctx, app.API, app.Store, app.Logger, workerID, req)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Worker updated: %s (%s, %s)\n\n", worker.Name, worker.Email, worker.Role)
			return nil
		},
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("email", "", "New email")
	cmd.Flags().String("phone", "", "New phone number")
	cmd.Flags().String("role", "", "New role (Waiter, Chef, Manager, Cashier, Host, Delivery)")

	return cmd
}

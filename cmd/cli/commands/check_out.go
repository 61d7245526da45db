package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/core/services"
	"github.com/ocroft/shiftdesk/pkg/core/status"
)

// CheckOutCmd creates the checkOut command
func CheckOutCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkOut <shift_id>",
		Short: "Check out of a shift you are checked in to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID, err := parseID(args[0], "shift_id")
			if err != nil {
				return err
			}
			workerID, err := resolveWorkerID(cmd)
			if err != nil {
				return err
			}

			shift, err := services.CheckOut(app.Ctx, app.API, app.Store, app.Logger, shiftID, workerID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Checked out.\n")
			printShiftDetails(*shift, status.WorkerView)
			return nil
		},
	}

	cmd.Flags().Int64("worker", 0, "Worker ID (defaults to the logged-in worker)")

	return cmd
}

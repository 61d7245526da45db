package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/core/services"
	"github.com/ocroft/shiftdesk/pkg/core/status"
	"github.com/ocroft/shiftdesk/pkg/session"
)

// CheckInCmd creates the checkIn command
func CheckInCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkIn <shift_id>",
		Short: "Check in to a shift (within its time window)",
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

			shift, err := services.CheckIn(app.Ctx, app.API, app.Store, app.Logger, shiftID, workerID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Checked in.\n")
			printShiftDetails(*shift, status.WorkerView)
			return nil
		},
	}

	cmd.Flags().Int64("worker", 0, "Worker ID (defaults to the logged-in worker)")

	return cmd
}

// resolveWorkerID takes the --worker flag when set, otherwise the
// saved login session.
func resolveWorkerID(cmd *cobra.Command) (int64, error) {
	if cmd.Flags().Changed("worker") {
		v, _ := cmd.Flags().GetInt64("worker")
		return v, nil
	}
	sess, err := session.Load()
	if err != nil {
		return 0, fmt.Errorf("no worker: log in first or pass --worker: %w", err)
	}
	return sess.WorkerID, nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/core/services"
	"github.com/ocroft/shiftdesk/pkg/core/status"
)

// CancelShiftCmd creates the cancelShift command
func CancelShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cancelShift <shift_id>",
		Short: "Cancel a shift, keeping its record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID, err := parseID(args[0], "shift_id")
			if err != nil {
				return err
			}

			shift, err := services.CancelShift(app.Ctx, app.API, app.Store, app.Logger, shiftID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift canceled.\n")
			printShiftDetails(*shift, status.ManagerView)
			return nil
		},
	}
}

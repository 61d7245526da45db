package commands

import (
	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/core/services"
	"github.com/ocroft/shiftdesk/pkg/core/status"
)

// ViewShiftCmd creates the viewShift command
func ViewShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewShift <shift_id>",
		Short: "Fetch one shift and show its details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID, err := parseID(args[0], "shift_id")
			if err != nil {
				return err
			}

			shift, err := services.GetShift(app.Ctx, app.API, app.Store, app.Logger, shiftID)
			if err != nil {
				return err
			}

			printShiftDetails(*shift, status.ManagerView)
			return nil
		},
	}
}

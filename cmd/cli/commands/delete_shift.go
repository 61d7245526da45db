package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/core/services"
)

// DeleteShiftCmd creates the deleteShift command
func DeleteShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteShift <shift_id>",
		Short: "Delete a shift permanently (prefer cancelShift to keep the record)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID, err := parseID(args[0], "shift_id")
			if err != nil {
				return err
			}

			if err := services.DeleteShift(app.Ctx, app.API, app.Store, app.Logger, shiftID); err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift %d deleted.\n\n", shiftID)
			return nil
		},
	}
}

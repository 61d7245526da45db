package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/core/model"
	"github.com/ocroft/shiftdesk/pkg/core/services"
	"github.com/ocroft/shiftdesk/pkg/core/status"
)

// SetShiftStatusCmd creates the setShiftStatus command
func SetShiftStatusCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setShiftStatus <shift_id> <status>",
		Short: "Force a shift's status (SCHEDULED, CHECKED_IN, COMPLETED, CANCELED)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID, err := parseID(args[0], "shift_id")
			if err != nil {
				return err
			}
			st := model.ShiftStatus(strings.ToUpper(args[1]))

			shift, err := services.SetShiftStatus(app.Ctx, app.API, app.Store, app.Logger, shiftID, st)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Status updated.\n")
			printShiftDetails(*shift, status.ManagerView)
			return nil
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/api"
	"github.com/ocroft/shiftdesk/pkg/core/model"
	"github.com/ocroft/shiftdesk/pkg/core/services"
	"github.com/ocroft/shiftdesk/pkg/core/status"
)

// UpdateShiftCmd creates the updateShift command. Only the flags the
// caller sets are sent; everything else is left unchanged server-side.
func UpdateShiftCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateShift <shift_id>",
		Short: "Edit an existing shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID, err := parseID(args[0], "shift_id")
			if err != nil {
				return err
			}

			var req api.UpdateShiftRequest

			if cmd.Flags().Changed("worker") {
				v, _ := cmd.Flags().GetInt64("worker")
				req.WorkerID = &v
			}
			if cmd.Flags().Changed("start") {
				raw, _ := cmd.Flags().GetString("start")
				t, err := parseTimeArg(raw)
				if err != nil {
					return err
				}
				req.StartTime = &t
			}
			if cmd.Flags().Changed("end") {
				raw, _ := cmd.Flags().GetString("end")
				t, err := parseTimeArg(raw)
				if err != nil {
					return err
				}
				req.EndTime = &t
			}
			if cmd.Flags().Changed("type") {
				raw, _ := cmd.Flags().GetString("type")
				st := model.ShiftType(raw)
				req.ShiftType = &st
			}
			if cmd.Flags().Changed("priority") {
				raw, _ := cmd.Flags().GetString("priority")
				p := model.Priority(raw)
				req.Priority = &p
			}
			if cmd.Flags().Changed("location") {
				v, _ := cmd.Flags().GetString("location")
				req.Location = &v
			}
			if cmd.Flags().Changed("notes") {
				v, _ := cmd.Flags().GetString("notes")
				req.Notes = &v
			}

			if req == (api.UpdateShiftRequest{}) {
				return fmt.Errorf("nothing to update: set at least one flag")
			}

			shift, err := services.UpdateShift(app.Ctx, app.API, app.Store, app.Logger, shiftID, req)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift updated!\n")
			printShiftDetails(*shift, status.ManagerView)
			return nil
		},
	}

	cmd.Flags().Int64("worker", 0, "Reassign the shift to this worker")
	cmd.Flags().String("start", "", fmt.Sprintf("New start time (%s)", timeLayout))
	cmd.Flags().String("end", "", fmt.Sprintf("New end time (%s)", timeLayout))
	cmd.Flags().String("type", "", "New shift type")
	cmd.Flags().String("priority", "", "New priority")
	cmd.Flags().String("location", "", "New location")
	cmd.Flags().String("notes", "", "New notes")

	return cmd
}

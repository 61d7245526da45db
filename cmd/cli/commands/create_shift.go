package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/api"
	"github.com/ocroft/shiftdesk/pkg/core/model"
	"github.com/ocroft/shiftdesk/pkg/core/services"
	"github.com/ocroft/shiftdesk/pkg/core/status"
)

// CreateShiftCmd creates the createShift command
func CreateShiftCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createShift <worker_id> <start> <end>",
		Short: "Schedule a new shift for a worker",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			workerID, err := parseID(args[0], "worker_id")
			if err != nil {
				return err
			}
			start, err := parseTimeArg(args[1])
			if err != nil {
				return err
			}
			end, err := parseTimeArg(args[2])
			if err != nil {
				return err
			}

			shiftType, _ := cmd.Flags().GetString("type")
			priority, _ := cmd.Flags().GetString("priority")
			location, _ := cmd.Flags().GetString("location")
			notes, _ := cmd.Flags().GetString("notes")

			req := api.CreateShiftRequest{
				WorkerID:     workerID,
				RestaurantID: app.Cfg.RestaurantID,
				StartTime:    start,
				EndTime:      end,
				ShiftType:    model.ShiftType(shiftType),
				Priority:     model.Priority(priority),
				Location:     location,
				Notes:        notes,
			}

			shift, err := services.CreateShift(app.Ctx, app.API, app.Store, app.Logger, req)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift created!\n")
			printShiftDetails(*shift, status.ManagerView)
			return nil
		},
	}

	cmd.Flags().String("type", string(model.TypeRegular), "Shift type (Regular, Overtime, Training, Special Event, On-Call)")
	cmd.Flags().String("priority", string(model.PriorityMedium), "Priority (Low, Medium, High)")
	cmd.Flags().String("location", "", "Location within the restaurant")
	cmd.Flags().String("notes", "", "Free-form notes for the worker")

	return cmd
}

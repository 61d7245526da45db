package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/api"
	"github.com/ocroft/shiftdesk/pkg/core/model"
	"github.com/ocroft/shiftdesk/pkg/core/services"
)

// CreateRecurringCmd creates the createRecurring command
func CreateRecurringCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createRecurring <worker_id> <start> <end> <rrule>",
		Short: "Schedule a repeating shift from an RRULE",
		Long: `Schedule a repeating shift. The rule is an iCalendar RRULE body and must
be bounded with COUNT or UNTIL, for example:

  createRecurring 7 "2026-09-07 09:00" "2026-09-07 13:00" "FREQ=WEEKLY;COUNT=4"`,
		Args: cobra.ExactArgs(4),
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
			ruleText := args[3]

			shiftType, _ := cmd.Flags().GetString("type")
			priority, _ := cmd.Flags().GetString("priority")

			template := api.CreateShiftRequest{
				WorkerID:     workerID,
				RestaurantID: app.Cfg.RestaurantID,
				StartTime:    start,
				EndTime:      end,
				ShiftType:    model.ShiftType(shiftType),
				Priority:     model.Priority(priority),
			}

			result, err := services.CreateRecurringShifts(app.Ctx, app.API, app.Store, app.Logger, template, ruleText)
			if result != nil && len(result.Created) > 0 {
				fmt.Printf("\n✓ Created %d shifts:\n", len(result.Created))
				for i, sh := range result.Created {
					fmt.Printf("  %2d. %s (shift %d)\n", i+1, sh.StartTime.Local().Format(timeLayout), sh.ID)
				}
				fmt.Println()
			}
			if err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().String("type", string(model.TypeRegular), "Shift type for every occurrence")
	cmd.Flags().String("priority", string(model.PriorityMedium), "Priority for every occurrence")

	return cmd
}

package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/api"
	"github.com/ocroft/shiftdesk/pkg/core/model"
	"github.com/ocroft/shiftdesk/pkg/core/schedule"
	"github.com/ocroft/shiftdesk/pkg/core/services"
	"github.com/ocroft/shiftdesk/pkg/core/status"
)

// ListShiftsCmd creates the listShifts command. It fetches the
// restaurant's shifts, applies the tab and filter flags locally and
// prints the result with derived statuses and summary counters.
func ListShiftsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listShifts",
		Short: "List the restaurant's shifts with filters and tabs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tabName, _ := cmd.Flags().GetString("tab")
			tab, err := parseTab(tabName)
			if err != nil {
				return err
			}

			var rng *api.DateRange
			if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") {
				fromRaw, _ := cmd.Flags().GetString("from")
				toRaw, _ := cmd.Flags().GetString("to")
				if fromRaw == "" || toRaw == "" {
					return fmt.Errorf("--from and --to must be set together")
				}
				from, err := parseTimeArg(fromRaw)
				if err != nil {
					return err
				}
				to, err := parseTimeArg(toRaw)
				if err != nil {
					return err
				}
				rng = &api.DateRange{Start: from, End: to}
			}

			shifts, err := services.FetchRestaurantShifts(app.Ctx, app.API, app.Store, app.Logger, app.Cfg.RestaurantID, rng)
			if err != nil {
				return err
			}

			var filter schedule.Filter
			if cmd.Flags().Changed("worker") {
				v, _ := cmd.Flags().GetInt64("worker")
				filter.WorkerID = &v
			}
			if cmd.Flags().Changed("type") {
				raw, _ := cmd.Flags().GetString("type")
				st := model.ShiftType(raw)
				if !st.IsValid() {
					return fmt.Errorf("unknown shift type %q", raw)
				}
				filter.ShiftType = &st
			}

			now := time.Now()
			visible := schedule.Categorize(filter.Apply(shifts), tab, now)

			fmt.Printf("\n%s: %d of %d shifts\n", tab, len(visible), len(shifts))
			printShiftTable(visible, status.ManagerView)

			stats := schedule.ComputeShiftStats(visible, now)
			fmt.Printf("Total: %d   Active now: %d   Upcoming: %d\n\n", stats.Total, stats.Active, stats.Upcoming)

			return nil
		},
	}

	cmd.Flags().String("tab", "all", "Time bucket: all, today, week, month")
	cmd.Flags().Int64("worker", 0, "Only shifts assigned to this worker")
	cmd.Flags().String("type", "", "Only shifts of this type")
	cmd.Flags().String("from", "", fmt.Sprintf("Fetch range start (%s)", timeLayout))
	cmd.Flags().String("to", "", fmt.Sprintf("Fetch range end (%s)", timeLayout))

	return cmd
}

func parseTab(name string) (schedule.Tab, error) {
	switch strings.ToLower(name) {
	case "all", "":
		return schedule.TabAll, nil
	case "today":
		return schedule.TabToday, nil
	case "week":
		return schedule.TabThisWeek, nil
	case "month":
		return schedule.TabThisMonth, nil
	default:
		return schedule.TabAll, fmt.Errorf("unknown tab %q: want all, today, week or month", name)
	}
}

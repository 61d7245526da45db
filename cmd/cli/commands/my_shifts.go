package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/api"
	"github.com/ocroft/shiftdesk/pkg/core/schedule"
	"github.com/ocroft/shiftdesk/pkg/core/services"
	"github.com/ocroft/shiftdesk/pkg/core/status"
)

// MyShiftsCmd creates the myShifts command. It renders the worker
// view: the logged-in worker's shifts grouped into current, upcoming
// and past buckets.
func MyShiftsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "myShifts",
		Short: "Show your shifts grouped into current, upcoming and past",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workerID, err := resolveWorkerID(cmd)
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

			shifts, err := services.FetchWorkerShifts(app.Ctx, app.API, app.Store, app.Logger, workerID, rng)
			if err != nil {
				return err
			}

			buckets := schedule.BucketForWorker(shifts, time.Now())

			fmt.Printf("\nCurrent (%d)\n", len(buckets.Current))
			printShiftTable(buckets.Current, status.WorkerView)

			fmt.Printf("Upcoming (%d)\n", len(buckets.Upcoming))
			printShiftTable(buckets.Upcoming, status.WorkerView)

			fmt.Printf("Past (%d)\n", len(buckets.Past))
			printShiftTable(buckets.Past, status.WorkerView)

			return nil
		},
	}

	cmd.Flags().Int64("worker", 0, "Worker ID (defaults to the logged-in worker)")
	cmd.Flags().String("from", "", fmt.Sprintf("Fetch range start (%s)", timeLayout))
	cmd.Flags().String("to", "", fmt.Sprintf("Fetch range end (%s)", timeLayout))

	return cmd
}

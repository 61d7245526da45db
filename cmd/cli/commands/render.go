package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ocroft/shiftdesk/pkg/core/model"
	"github.com/ocroft/shiftdesk/pkg/core/status"
)

// timeLayout is the format accepted by time arguments and used in all
// table output.
const timeLayout = "2006-01-02 15:04"

func parseTimeArg(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(timeLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q must match %q or RFC3339", s, timeLayout)
	}
	return t, nil
}

func parseID(s, name string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", name, err)
	}
	return id, nil
}

func printShiftTable(shifts []model.Shift, view status.View) {
	if len(shifts) == 0 {
		fmt.Println("\nNo shifts to show.")
		return
	}

	now := time.Now()
	fmt.Printf("\n%-6s %-17s %-17s %-14s %-14s %-11s %-8s\n",
		"ID", "START", "END", "WORKER", "TYPE", "STATUS", "PRIORITY")
	for _, sh := range shifts {
		st := status.DeriveShift(sh, now, view)
		fmt.Printf("%-6d %-17s %-17s %-14s %-14s %-11s %-8s\n",
			sh.ID,
			sh.StartTime.Local().Format(timeLayout),
			sh.EndTime.Local().Format(timeLayout),
			sh.Worker.Name,
			string(sh.ShiftType),
			st.Label,
			string(sh.Priority),
		)
	}
	fmt.Println()
}

func printShiftDetails(sh model.Shift, view status.View) {
	st := status.DeriveShift(sh, time.Now(), view)

	fmt.Printf("\nShift %d\n", sh.ID)
	fmt.Printf("  Status:     %s\n", st.Label)
	fmt.Printf("  Worker:     %s (%d)\n", sh.Worker.Name, sh.Worker.ID)
	fmt.Printf("  Restaurant: %s\n", sh.Restaurant.Name)
	fmt.Printf("  Start:      %s\n", sh.StartTime.Local().Format(timeLayout))
	fmt.Printf("  End:        %s\n", sh.EndTime.Local().Format(timeLayout))
	fmt.Printf("  Duration:   %s\n", status.FormatDuration(sh.StartTime, sh.EndTime))
	if sh.ShiftType != "" {
		fmt.Printf("  Type:       %s\n", sh.ShiftType)
	}
	if sh.Priority != "" {
		fmt.Printf("  Priority:   %s\n", sh.Priority)
	}
	if sh.Location != "" {
		fmt.Printf("  Location:   %s\n", sh.Location)
	}
	if sh.Notes != "" {
		fmt.Printf("  Notes:      %s\n", sh.Notes)
	}
	if sh.CheckedInTime != nil {
		fmt.Printf("  Checked in:  %s\n", sh.CheckedInTime.Local().Format(timeLayout))
	}
	if sh.CheckedOutTime != nil {
		fmt.Printf("  Checked out: %s\n", sh.CheckedOutTime.Local().Format(timeLayout))
	}
	fmt.Println()
}

func printWorkerTable(workers []model.Worker) {
	if len(workers) == 0 {
		fmt.Println("\nNo workers to show.")
		return
	}

	fmt.Printf("\n%-6s %-18s %-26s %-10s %-8s\n", "ID", "NAME", "EMAIL", "ROLE", "ACTIVE")
	for _, w := range workers {
		fmt.Printf("%-6d %-18s %-26s %-10s %-8t\n", w.ID, w.Name, w.Email, string(w.Role), w.Active)
	}
	fmt.Println()
}

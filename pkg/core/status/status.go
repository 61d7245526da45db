// Package status derives the display state of a shift from its
// server-persisted status and the current wall-clock time. The result
// is never stored on the record; callers re-derive on every render.
package status

import (
	"fmt"
	"time"

	"github.com/ocroft/shiftdesk/pkg/core/model"
)

// View selects whose perspective a label is rendered for. The only
// divergence is the label for a scheduled shift whose window has
// passed: managers see "Past", workers see "Missed".
type View int

const (
	ManagerView View = iota
	WorkerView
)

// State is the derived display state of one shift at one instant.
type State struct {
	Label         string
	Color         string
	AllowCheckIn  bool
	AllowCheckOut bool
	AllowCancel   bool
}

// Derive computes the display state. Rules are evaluated in order,
// first match wins: explicit statuses before time-based inference.
// Both window boundaries are inclusive of "Active".
func Derive(status model.ShiftStatus, start, end, now time.Time, view View) State {
	switch status {
	case model.StatusCheckedIn:
		return State{
			Label:         "Checked In",
			Color:         "success",
			AllowCheckOut: withinWindow(start, end, now),
		}
	case model.StatusCompleted:
		return State{Label: "Completed", Color: "default"}
	case model.StatusCanceled:
		return State{Label: "Canceled", Color: "error"}
	}

	// SCHEDULED (or absent): infer from the time window.
	switch {
	case now.Before(start):
		return State{Label: "Upcoming", Color: "info", AllowCancel: true}
	case now.After(end):
		if view == WorkerView {
			return State{Label: "Missed", Color: "warning"}
		}
		return State{Label: "Past", Color: "warning"}
	default:
		return State{Label: "Active", Color: "primary", AllowCheckIn: true}
	}
}

// DeriveShift is a convenience wrapper over Derive for a full record.
func DeriveShift(s model.Shift, now time.Time, view View) State {
	return Derive(s.Status, s.StartTime, s.EndTime, now, view)
}

// withinWindow reports start <= now <= end.
func withinWindow(start, end, now time.Time) bool {
	return !now.Before(start) && !now.After(end)
}

// PriorityColor maps a shift priority to its display color class.
func PriorityColor(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "error"
	case model.PriorityMedium:
		return "warning"
	case model.PriorityLow:
		return "info"
	default:
		return "default"
	}
}

// FormatDuration renders the length of a shift as "2h 30m", dropping
// the zero component.
func FormatDuration(start, end time.Time) string {
	mins := int(end.Sub(start).Minutes())
	hours := mins / 60
	mins = mins % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}

package services

import (
	"context"
	"fmt"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/ocroft/shiftdesk/pkg/api"
	"github.com/ocroft/shiftdesk/pkg/core/model"
	"github.com/ocroft/shiftdesk/pkg/core/store"
)

// RecurringResult reports how far a recurring creation got. Created
// holds every shift that was committed before any failure.
type RecurringResult struct {
	Created []model.Shift
	Dates   []string
}

// CreateRecurringShifts expands an RRULE into one create call per
// occurrence. The first occurrence's start is the template's start
// time; every occurrence keeps the template's duration. The rule must
// be bounded with COUNT or UNTIL so the expansion is finite.
//
// Each occurrence runs the full create lifecycle. On the first
// failure the remaining occurrences are skipped and the shifts
// created so far stay committed; the caller re-attempts from there.
func CreateRecurringShifts(ctx context.Context, client api.ShiftAPI, st *store.Store, logger *zap.Logger, template api.CreateShiftRequest, ruleText string) (*RecurringResult, error) {
	if err := validateStruct(template); err != nil {
		return nil, err
	}
	if err := validateTimes(template.StartTime, template.EndTime); err != nil {
		return nil, err
	}

	opts, err := rrule.StrToROption(ruleText)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule: %w", err)
	}
	if opts.Count == 0 && opts.Until.IsZero() {
		return nil, fmt.Errorf("recurrence rule must be bounded with COUNT or UNTIL")
	}
	opts.Dtstart = template.StartTime

	rule, err := rrule.NewRRule(*opts)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule: %w", err)
	}

	occurrences := rule.All()
	if len(occurrences) == 0 {
		return nil, fmt.Errorf("recurrence rule produced no occurrences")
	}

	duration := template.EndTime.Sub(template.StartTime)
	logger.Info("Expanding recurring shifts",
		zap.String("rule", ruleText),
		zap.Int("occurrences", len(occurrences)),
		zap.Duration("shift_duration", duration))

	result := &RecurringResult{}
	for _, start := range occurrences {
		occ := template
		occ.StartTime = start
		occ.EndTime = start.Add(duration)

		shift, err := CreateShift(ctx, client, st, logger, occ)
		if err != nil {
			return result, fmt.Errorf("failed at occurrence %s: %w", start.Format("2006-01-02 15:04"), err)
		}
		result.Created = append(result.Created, *shift)
		result.Dates = append(result.Dates, start.Format("2006-01-02 15:04"))
	}

	logger.Info("Recurring shifts created", zap.Int("count", len(result.Created)))
	return result, nil
}

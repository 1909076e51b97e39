package stats

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/2beens/liftstats/internal/workouts"
)

var (
	// open ends of a half-bounded range; both fit in UnixNano
	openRangeStart = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	openRangeEnd   = time.Date(2200, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// filterFromQuery builds a filter from the user_id, exercise_id, from and to
// query params. Absent params impose no constraint.
func filterFromQuery(query url.Values) (*workouts.Filter, error) {
	filter := workouts.Filter{}

	if userIDStr := query.Get("user_id"); userIDStr != "" {
		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			return nil, fmt.Errorf("parameter <user_id>: %w", err)
		}
		filter = filter.WithUser(userID)
	}

	if exerciseIDStr := query.Get("exercise_id"); exerciseIDStr != "" {
		exerciseID, err := strconv.Atoi(exerciseIDStr)
		if err != nil {
			return nil, fmt.Errorf("parameter <exercise_id>: %w", err)
		}
		filter = filter.WithExercise(exerciseID)
	}

	fromStr, toStr := query.Get("from"), query.Get("to")
	if fromStr == "" && toStr == "" {
		return &filter, nil
	}

	from, to := openRangeStart, openRangeEnd
	if fromStr != "" {
		parsed, _, err := parseTimeParam(fromStr)
		if err != nil {
			return nil, fmt.Errorf("parameter <from>: %w", err)
		}
		from = parsed
	}
	if toStr != "" {
		parsed, dateOnly, err := parseTimeParam(toStr)
		if err != nil {
			return nil, fmt.Errorf("parameter <to>: %w", err)
		}
		to = parsed
		if dateOnly {
			to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
	}

	dateRange, err := workouts.NewDateRange(from, to)
	if err != nil {
		return nil, err
	}
	filter = filter.WithDateRange(dateRange)

	return &filter, nil
}

// parseTimeParam accepts RFC 3339 timestamps and plain dates (UTC midnight).
func parseTimeParam(value string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339, value); err == nil {
		return t, false, nil
	}
	if t, err = time.Parse(time.DateOnly, value); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid time [%s], expected RFC 3339 or %s", value, time.DateOnly)
}

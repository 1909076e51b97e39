package workouts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrRangeInvalid = errors.New("end date must be greater than or equal to start date")

// DateRange is an inclusive [Start, End] time window.
// The zero value is not valid, use NewDateRange.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("date range [%s - %s]: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), ErrRangeInvalid)
	}
	return DateRange{start: start, end: end}, nil
}

// YearRange covers the whole calendar year in the given location.
func YearRange(year int, loc *time.Location) DateRange {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return DateRange{
		start: start,
		end:   start.AddDate(1, 0, 0).Add(-time.Nanosecond),
	}
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s - %s", r.start.Format(time.DateOnly), r.end.Format(time.DateOnly))
}

// Filter narrows a query. Nil fields impose no constraint; set fields are ANDed.
type Filter struct {
	UserID     *int
	ExerciseID *int
	DateRange  *DateRange
}

func (f Filter) WithUser(id int) Filter {
	f.UserID = &id
	return f
}

func (f Filter) WithExercise(id int) Filter {
	f.ExerciseID = &id
	return f
}

func (f Filter) WithDateRange(r DateRange) Filter {
	f.DateRange = &r
	return f
}

func (f Filter) WithoutDateRange() Filter {
	f.DateRange = nil
	return f
}

// Key is a canonical representation of the filter, equal for equal filters.
func (f *Filter) Key() string {
	if f == nil {
		return "u=*|e=*|d=*"
	}

	var sb strings.Builder
	sb.WriteString("u=")
	writeOptionalInt(&sb, f.UserID)
	sb.WriteString("|e=")
	writeOptionalInt(&sb, f.ExerciseID)
	sb.WriteString("|d=")
	if f.DateRange == nil {
		sb.WriteString("*")
	} else {
		// UnixNano wraps outside 1678-2262, so bounds are written in full
		sb.WriteString(f.DateRange.start.UTC().Format(time.RFC3339Nano))
		sb.WriteString("..")
		sb.WriteString(f.DateRange.end.UTC().Format(time.RFC3339Nano))
	}
	return sb.String()
}

func writeOptionalInt(sb *strings.Builder, v *int) {
	if v == nil {
		sb.WriteString("*")
		return
	}
	sb.WriteString(strconv.Itoa(*v))
}

func (f *Filter) matchesWorkout(w *Workout) bool {
	if f == nil {
		return true
	}
	if f.UserID != nil && w.UserID != *f.UserID {
		return false
	}
	if f.DateRange != nil && !f.DateRange.Contains(w.CompletedAt) {
		return false
	}
	return true
}

func (f *Filter) matchesBlock(b *Block) bool {
	if f == nil || f.ExerciseID == nil {
		return true
	}
	return b.ExerciseID == *f.ExerciseID
}

package workouts

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrAmbiguous = errors.New("ambiguous match")
)

type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"name_first"`
	LastName  string `json:"name_last"`
}

type Exercise struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type Workout struct {
	UserID      int       `json:"user_id"`
	CompletedAt time.Time `json:"datetime_completed"`
	Blocks      []Block   `json:"blocks"`
}

type Block struct {
	ExerciseID int   `json:"exercise_id"`
	Sets       []Set `json:"sets"`
}

// Set is a single performed set. Weight is optional in the source data.
type Set struct {
	Reps   int  `json:"reps"`
	Weight *int `json:"weight,omitempty"`
}

// Kilos returns the set weight, 0 when it was not recorded.
func (s Set) Kilos() int {
	if s.Weight == nil {
		return 0
	}
	return *s.Weight
}

// Volume is reps * weight.
func (s Set) Volume() int {
	return s.Reps * s.Kilos()
}

// MonthTotal is the total weight lifted in one calendar month.
type MonthTotal struct {
	Year        int        `json:"year"`
	Month       time.Month `json:"month"`
	TotalWeight int        `json:"totalWeight"`
}

// Snapshot holds everything loaded at startup. It is never mutated after Load.
type Snapshot struct {
	Users     []User
	Exercises []Exercise
	Workouts  []Workout
}

func (s *Snapshot) UserByName(firstName, lastName string) (User, error) {
	var (
		found User
		count int
	)
	for _, u := range s.Users {
		if u.FirstName == firstName && u.LastName == lastName {
			found = u
			count++
		}
	}
	switch count {
	case 0:
		return User{}, fmt.Errorf("user [%s %s]: %w", firstName, lastName, ErrNotFound)
	case 1:
		return found, nil
	default:
		return User{}, fmt.Errorf("user [%s %s]: %w", firstName, lastName, ErrAmbiguous)
	}
}

func (s *Snapshot) ExerciseByTitle(title string) (Exercise, error) {
	var (
		found Exercise
		count int
	)
	for _, ex := range s.Exercises {
		if ex.Title == title {
			found = ex
			count++
		}
	}
	switch count {
	case 0:
		return Exercise{}, fmt.Errorf("exercise [%s]: %w", title, ErrNotFound)
	case 1:
		return found, nil
	default:
		return Exercise{}, fmt.Errorf("exercise [%s]: %w", title, ErrAmbiguous)
	}
}

// completedAtLayouts are tried in order when decoding datetime_completed.
var completedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseCompletedAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range completedAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format: %q", raw)
}

// wire shapes, with pointers so that missing required fields can be told apart from zero values

type userRecord struct {
	ID        *int   `json:"id"`
	FirstName string `json:"name_first"`
	LastName  string `json:"name_last"`
}

type exerciseRecord struct {
	ID    *int   `json:"id"`
	Title string `json:"title"`
}

type workoutRecord struct {
	UserID      *int          `json:"user_id"`
	CompletedAt *string       `json:"datetime_completed"`
	Blocks      []blockRecord `json:"blocks"`
}

type blockRecord struct {
	ExerciseID *int        `json:"exercise_id"`
	Sets       []setRecord `json:"sets"`
}

type setRecord struct {
	Reps   *int `json:"reps"`
	Weight *int `json:"weight"`
}

func (r userRecord) toUser(i int) (User, error) {
	if r.ID == nil {
		return User{}, fmt.Errorf("user #%d: missing id", i)
	}
	return User{ID: *r.ID, FirstName: r.FirstName, LastName: r.LastName}, nil
}

func (r exerciseRecord) toExercise(i int) (Exercise, error) {
	if r.ID == nil {
		return Exercise{}, fmt.Errorf("exercise #%d: missing id", i)
	}
	return Exercise{ID: *r.ID, Title: r.Title}, nil
}

func (r workoutRecord) toWorkout(i int) (Workout, error) {
	if r.UserID == nil {
		return Workout{}, fmt.Errorf("workout #%d: missing user_id", i)
	}
	if r.CompletedAt == nil {
		return Workout{}, fmt.Errorf("workout #%d: missing datetime_completed", i)
	}
	if r.Blocks == nil {
		return Workout{}, fmt.Errorf("workout #%d: missing blocks", i)
	}

	completedAt, err := parseCompletedAt(*r.CompletedAt)
	if err != nil {
		return Workout{}, fmt.Errorf("workout #%d: %w", i, err)
	}

	w := Workout{
		UserID:      *r.UserID,
		CompletedAt: completedAt,
		Blocks:      make([]Block, 0, len(r.Blocks)),
	}
	for bi, br := range r.Blocks {
		if br.ExerciseID == nil {
			return Workout{}, fmt.Errorf("workout #%d, block #%d: missing exercise_id", i, bi)
		}
		if br.Sets == nil {
			return Workout{}, fmt.Errorf("workout #%d, block #%d: missing sets", i, bi)
		}
		b := Block{
			ExerciseID: *br.ExerciseID,
			Sets:       make([]Set, 0, len(br.Sets)),
		}
		for si, sr := range br.Sets {
			if sr.Reps == nil {
				return Workout{}, fmt.Errorf("workout #%d, block #%d, set #%d: missing reps", i, bi, si)
			}
			if *sr.Reps < 0 {
				return Workout{}, fmt.Errorf("workout #%d, block #%d, set #%d: negative reps", i, bi, si)
			}
			if sr.Weight != nil && *sr.Weight < 0 {
				return Workout{}, fmt.Errorf("workout #%d, block #%d, set #%d: negative weight", i, bi, si)
			}
			b.Sets = append(b.Sets, Set{Reps: *sr.Reps, Weight: sr.Weight})
		}
		w.Blocks = append(w.Blocks, b)
	}

	return w, nil
}

// decodeRecords unmarshals a JSON array; null and empty arrays are rejected.
func decodeRecords[T any](raw []byte) ([]T, error) {
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("no records")
	}
	return records, nil
}

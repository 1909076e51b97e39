package answers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/workouts"

	log "github.com/sirupsen/logrus"
)

var ErrNoData = errors.New("no matching sets")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=answers_test

type statsEngine interface {
	TotalWeight(ctx context.Context, filter *workouts.Filter) (int, error)
	TotalWeightByMonth(ctx context.Context, filter *workouts.Filter) ([]workouts.MonthTotal, error)
	MaxWeight(ctx context.Context, filter *workouts.Filter) (int, bool, error)
}

type directory interface {
	UserByName(firstName, lastName string) (workouts.User, error)
	ExerciseByTitle(title string) (workouts.Exercise, error)
}

type Athlete struct {
	FirstName string
	LastName  string
}

func (a Athlete) String() string {
	return a.FirstName + " " + a.LastName
}

// Questions names the athletes, exercises and years the canned questions ask about.
type Questions struct {
	BenchPress string
	BackSquat  string
	Squatter   Athlete
	Presser    Athlete
	SquatYear  int
	BestYear   int
	Location   *time.Location
}

func DefaultQuestions() Questions {
	return Questions{
		BenchPress: "Bench Press",
		BackSquat:  "Back Squat",
		Squatter:   Athlete{FirstName: "Barry", LastName: "Moore"},
		Presser:    Athlete{FirstName: "Abby", LastName: "Smith"},
		SquatYear:  2016,
		BestYear:   2017,
		Location:   time.UTC,
	}
}

type Answers struct {
	// Question1: how many total pounds have all athletes combined bench pressed?
	Question1 int `json:"Question1"`
	// Question2: how many total pounds did the squatter back squat in SquatYear?
	Question2 int `json:"Question2"`
	// Question3: in what month of BestYear did the squatter back squat the most total weight?
	Question3 string `json:"Question3"`
	// Question4: the presser's all-time bench press PR weight
	Question4 int `json:"Question4"`
}

type Answerer struct {
	engine    statsEngine
	directory directory
	questions Questions
}

func NewAnswerer(engine statsEngine, directory directory, questions Questions) *Answerer {
	if questions.Location == nil {
		questions.Location = time.UTC
	}
	return &Answerer{
		engine:    engine,
		directory: directory,
		questions: questions,
	}
}

func (a *Answerer) Answer(ctx context.Context) (_ *Answers, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "answers.answer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	q := a.questions
	benchPress, err := a.directory.ExerciseByTitle(q.BenchPress)
	if err != nil {
		return nil, err
	}
	backSquat, err := a.directory.ExerciseByTitle(q.BackSquat)
	if err != nil {
		return nil, err
	}
	squatter, err := a.directory.UserByName(q.Squatter.FirstName, q.Squatter.LastName)
	if err != nil {
		return nil, err
	}
	presser, err := a.directory.UserByName(q.Presser.FirstName, q.Presser.LastName)
	if err != nil {
		return nil, err
	}

	answers := &Answers{}

	log.Debugf("question 1: total %s, all athletes", q.BenchPress)
	allBench := workouts.Filter{}.WithExercise(benchPress.ID)
	answers.Question1, err = a.engine.TotalWeight(ctx, &allBench)
	if err != nil {
		return nil, fmt.Errorf("question 1: %w", err)
	}

	log.Debugf("question 2: total %s, %s, %d", q.BackSquat, q.Squatter, q.SquatYear)
	squats := workouts.Filter{}.
		WithUser(squatter.ID).
		WithExercise(backSquat.ID).
		WithDateRange(workouts.YearRange(q.SquatYear, q.Location))
	answers.Question2, err = a.engine.TotalWeight(ctx, &squats)
	if err != nil {
		return nil, fmt.Errorf("question 2: %w", err)
	}

	log.Debugf("question 3: best %s month, %s, %d", q.BackSquat, q.Squatter, q.BestYear)
	squats = squats.WithDateRange(workouts.YearRange(q.BestYear, q.Location))
	months, err := a.engine.TotalWeightByMonth(ctx, &squats)
	if err != nil {
		return nil, fmt.Errorf("question 3: %w", err)
	}
	best, ok := workouts.BestMonth(months)
	if !ok {
		return nil, fmt.Errorf("question 3: %s %s in %d: %w", q.Squatter, q.BackSquat, q.BestYear, ErrNoData)
	}
	answers.Question3 = FormatMonth(best)

	log.Debugf("question 4: %s PR, %s", q.BenchPress, q.Presser)
	presses := workouts.Filter{}.WithUser(presser.ID).WithExercise(benchPress.ID)
	pr, found, err := a.engine.MaxWeight(ctx, &presses)
	if err != nil {
		return nil, fmt.Errorf("question 4: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("question 4: %s %s: %w", q.Presser, q.BenchPress, ErrNoData)
	}
	answers.Question4 = pr

	return answers, nil
}

// FormatMonth renders a month row as e.g. "Jan 2017".
func FormatMonth(m workouts.MonthTotal) string {
	return fmt.Sprintf("%.3s %d", m.Month, m.Year)
}

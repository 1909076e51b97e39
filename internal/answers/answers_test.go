package answers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/2beens/liftstats/internal/answers"
	"github.com/2beens/liftstats/internal/workouts"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSnapshot(t *testing.T) *workouts.Snapshot {
	t.Helper()
	logger, _ := test.NewNullLogger()
	snapshot, err := workouts.Load(
		context.Background(),
		workouts.NewDiskSource("../workouts/testdata/gym"),
		logger,
	)
	require.NoError(t, err)
	return snapshot
}

func TestAnswerer_Answer(t *testing.T) {
	snapshot := loadSnapshot(t)
	answerer := answers.NewAnswerer(workouts.NewEngine(snapshot), snapshot, answers.DefaultQuestions())

	got, err := answerer.Answer(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 1155, got.Question1)
	assert.Equal(t, 1100, got.Question2)
	assert.Equal(t, "Mar 2017", got.Question3)
	assert.Equal(t, 95, got.Question4)

	gotJson, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Question1":1155,"Question2":1100,"Question3":"Mar 2017","Question4":95}`, string(gotJson))
}

func TestAnswerer_Answer_CachedEngine(t *testing.T) {
	snapshot := loadSnapshot(t)
	cached := workouts.NewCachedEngine(workouts.NewEngine(snapshot), 0, 0)
	answerer := answers.NewAnswerer(cached, snapshot, answers.DefaultQuestions())

	first, err := answerer.Answer(context.Background())
	require.NoError(t, err)
	second, err := answerer.Answer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnswerer_Answer_UnknownAthlete(t *testing.T) {
	snapshot := loadSnapshot(t)
	questions := answers.DefaultQuestions()
	questions.Presser = answers.Athlete{FirstName: "Nobody", LastName: "Here"}
	answerer := answers.NewAnswerer(workouts.NewEngine(snapshot), snapshot, questions)

	got, err := answerer.Answer(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, workouts.ErrNotFound)
}

func TestAnswerer_Answer_NoSquatsInYear(t *testing.T) {
	snapshot := loadSnapshot(t)
	questions := answers.DefaultQuestions()
	questions.BestYear = 2010
	answerer := answers.NewAnswerer(workouts.NewEngine(snapshot), snapshot, questions)

	got, err := answerer.Answer(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, answers.ErrNoData)
	assert.Contains(t, err.Error(), "question 3")
}

func TestAnswerer_Answer_EngineFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	engineMock := NewMockstatsEngine(ctrl)
	directoryMock := NewMockdirectory(ctrl)

	directoryMock.EXPECT().ExerciseByTitle("Bench Press").Return(workouts.Exercise{ID: 10, Title: "Bench Press"}, nil)
	directoryMock.EXPECT().ExerciseByTitle("Back Squat").Return(workouts.Exercise{ID: 20, Title: "Back Squat"}, nil)
	directoryMock.EXPECT().UserByName("Barry", "Moore").Return(workouts.User{ID: 2}, nil)
	directoryMock.EXPECT().UserByName("Abby", "Smith").Return(workouts.User{ID: 1}, nil)

	engineMock.EXPECT().
		TotalWeight(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter *workouts.Filter) (int, error) {
			require.NotNil(t, filter)
			require.NotNil(t, filter.ExerciseID)
			assert.Equal(t, 10, *filter.ExerciseID)
			assert.Nil(t, filter.UserID)
			assert.Nil(t, filter.DateRange)
			return 300, nil
		})
	engineMock.EXPECT().
		TotalWeight(gomock.Any(), gomock.Any()).
		Return(0, &workouts.QueryError{Op: workouts.OpTotalWeight, Err: errors.New("boom")})

	answerer := answers.NewAnswerer(engineMock, directoryMock, answers.DefaultQuestions())
	got, err := answerer.Answer(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, workouts.ErrQueryFault)
	assert.Contains(t, err.Error(), "question 2")
}

func TestAnswerer_Answer_NoPresses(t *testing.T) {
	ctrl := gomock.NewController(t)
	engineMock := NewMockstatsEngine(ctrl)
	snapshot := loadSnapshot(t)

	engineMock.EXPECT().TotalWeight(gomock.Any(), gomock.Any()).Return(10, nil).Times(2)
	engineMock.EXPECT().
		TotalWeightByMonth(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter *workouts.Filter) ([]workouts.MonthTotal, error) {
			require.NotNil(t, filter.DateRange)
			assert.Equal(t, time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC), filter.DateRange.Start())
			return []workouts.MonthTotal{
				{Year: 2017, Month: time.May, TotalWeight: 10},
				{Year: 2017, Month: time.June, TotalWeight: 20},
				{Year: 2017, Month: time.July, TotalWeight: 20},
			}, nil
		})
	engineMock.EXPECT().MaxWeight(gomock.Any(), gomock.Any()).Return(0, false, nil)

	answerer := answers.NewAnswerer(engineMock, snapshot, answers.DefaultQuestions())
	got, err := answerer.Answer(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, answers.ErrNoData)
	assert.Contains(t, err.Error(), "Abby Smith")
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "Jan 2016", answers.FormatMonth(workouts.MonthTotal{Year: 2016, Month: time.January}))
	assert.Equal(t, "Nov 2017", answers.FormatMonth(workouts.MonthTotal{Year: 2017, Month: time.November}))
	assert.Equal(t, "May 2018", answers.FormatMonth(workouts.MonthTotal{Year: 2018, Month: time.May}))
}

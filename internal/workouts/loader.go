package workouts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	UsersSourceName     = "users.json"
	ExercisesSourceName = "exercises.json"
	WorkoutsSourceName  = "workouts.json"
)

// Source loads raw bytes of a named resource.
type Source interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// DiskSource reads resources as files from a root directory.
type DiskSource struct {
	rootPath string
}

func NewDiskSource(rootPath string) *DiskSource {
	return &DiskSource{
		rootPath: rootPath,
	}
}

func (ds *DiskSource) Read(_ context.Context, name string) ([]byte, error) {
	path := filepath.Join(ds.rootPath, name)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("the file: %s: %w", path, ErrSourceMissing)
		}
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	return content, nil
}

// Load reads users, exercises and workouts from source. Either all three are
// loaded and a snapshot is returned, or an error wrapped in *SourceError is.
func Load(ctx context.Context, source Source, logger logrus.FieldLogger) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	logger.Info("load users")
	users, err := loadSource(ctx, source, UsersSourceName, userRecord.toUser)
	if err != nil {
		return nil, err
	}

	logger.Info("load exercises")
	exercises, err := loadSource(ctx, source, ExercisesSourceName, exerciseRecord.toExercise)
	if err != nil {
		return nil, err
	}

	logger.Info("load workouts")
	workouts, err := loadSource(ctx, source, WorkoutsSourceName, workoutRecord.toWorkout)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("users", len(users)),
		attribute.Int("exercises", len(exercises)),
		attribute.Int("workouts", len(workouts)),
	)
	logger.WithFields(logrus.Fields{
		"users":     len(users),
		"exercises": len(exercises),
		"workouts":  len(workouts),
	}).Info("snapshot loaded")

	return &Snapshot{
		Users:     users,
		Exercises: exercises,
		Workouts:  workouts,
	}, nil
}

func loadSource[R any, T any](
	ctx context.Context,
	source Source,
	name string,
	convert func(R, int) (T, error),
) ([]T, error) {
	raw, err := source.Read(ctx, name)
	if err != nil {
		if !errors.Is(err, ErrSourceMissing) {
			err = fmt.Errorf("%w: %w", ErrSourceInvalid, err)
		}
		return nil, &SourceError{Name: name, Err: err}
	}

	records, err := decodeRecords[R](raw)
	if err != nil {
		return nil, &SourceError{Name: name, Err: fmt.Errorf("%w: %w", ErrSourceInvalid, err)}
	}

	out := make([]T, 0, len(records))
	for i, r := range records {
		item, err := convert(r, i)
		if err != nil {
			return nil, &SourceError{Name: name, Err: fmt.Errorf("%w: %w", ErrSourceInvalid, err)}
		}
		out = append(out, item)
	}

	return out, nil
}

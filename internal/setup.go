package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/answers"
	"github.com/2beens/liftstats/internal/config"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/workouts"
	"github.com/2beens/liftstats/pkg"

	log "github.com/sirupsen/logrus"
)

// Stats is everything needed to answer queries: the loaded snapshot, the
// cached engine on top of it and the canned questions answerer.
type Stats struct {
	Snapshot *workouts.Snapshot
	Engine   *workouts.CachedEngine
	Answerer *answers.Answerer
}

// SetupStats loads the snapshot from cfg.DataPath and builds the engine.
// metricsManager may be nil.
func SetupStats(ctx context.Context, cfg *config.Config, metricsManager *metrics.Manager) (*Stats, error) {
	dataDirExists, err := pkg.PathExists(cfg.DataPath, true)
	if err != nil {
		return nil, fmt.Errorf("check data dir: %w", err)
	}
	if !dataDirExists {
		log.Warnf("data dir [%s] does not exist", cfg.DataPath)
	}

	snapshot, err := workouts.Load(ctx, workouts.NewDiskSource(cfg.DataPath), log.StandardLogger())
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if metricsManager != nil {
		metricsManager.GaugeWorkouts.Set(float64(len(snapshot.Workouts)))
	}

	engineOpts := []workouts.EngineOption{
		workouts.WithMetrics(metricsManager),
	}
	if cfg.MonthOnlyOrdering {
		log.Debugln("month only ordering of monthly totals enabled")
		engineOpts = append(engineOpts, workouts.WithMonthOnlyOrdering())
	}

	engine := workouts.NewCachedEngine(
		workouts.NewEngine(snapshot, engineOpts...),
		cfg.QueryCacheSizeMB*1024*1024,
		cfg.QueryCacheExpireSec,
	)

	return &Stats{
		Snapshot: snapshot,
		Engine:   engine,
		Answerer: answers.NewAnswerer(engine, snapshot, QuestionsFromConfig(cfg.Questions)),
	}, nil
}

func QuestionsFromConfig(q config.Questions) answers.Questions {
	return answers.Questions{
		BenchPress: q.BenchPress,
		BackSquat:  q.BackSquat,
		Squatter: answers.Athlete{
			FirstName: q.SquatterFirst,
			LastName:  q.SquatterLast,
		},
		Presser: answers.Athlete{
			FirstName: q.PresserFirst,
			LastName:  q.PresserLast,
		},
		SquatYear: q.SquatYear,
		BestYear:  q.BestSquatterYear,
		Location:  time.UTC,
	}
}

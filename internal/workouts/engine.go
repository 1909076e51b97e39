package workouts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const (
	OpTotalWeight        = "total weight"
	OpTotalWeightByMonth = "total weight by month"
	OpWeight             = "weight"
)

var errNoSnapshot = errors.New("snapshot not loaded")

// Engine answers aggregate queries over a loaded snapshot.
// It never mutates the snapshot, so it is safe for concurrent use.
type Engine struct {
	snapshot          *Snapshot
	monthOnlyOrdering bool
	metrics           *metrics.Manager
}

type EngineOption func(e *Engine)

// WithMonthOnlyOrdering makes TotalWeightByMonth order rows by month number
// alone, ignoring the year, as older reports did.
func WithMonthOnlyOrdering() EngineOption {
	return func(e *Engine) {
		e.monthOnlyOrdering = true
	}
}

func WithMetrics(m *metrics.Manager) EngineOption {
	return func(e *Engine) {
		e.metrics = m
	}
}

func NewEngine(snapshot *Snapshot, opts ...EngineOption) *Engine {
	e := &Engine{
		snapshot: snapshot,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// flatSet is a set paired with the completion month of its workout.
type flatSet struct {
	year  int
	month time.Month
	set   Set
}

type flatBlock struct {
	year  int
	month time.Month
	block *Block
}

// TotalWeight sums reps*weight over every set surviving the filter.
func (e *Engine) TotalWeight(ctx context.Context, filter *Filter) (total int, err error) {
	err = e.run(ctx, OpTotalWeight, "engine.totalWeight", filter, func() error {
		sets, err := e.survivingSets(filter)
		if err != nil {
			return err
		}
		for _, fs := range sets {
			total += fs.set.Volume()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

type monthKey struct {
	year  int
	month time.Month
}

// TotalWeightByMonth groups surviving sets by the (year, month) their workout
// was completed in. Months without surviving sets are not reported.
func (e *Engine) TotalWeightByMonth(ctx context.Context, filter *Filter) (rows []MonthTotal, err error) {
	err = e.run(ctx, OpTotalWeightByMonth, "engine.totalWeightByMonth", filter, func() error {
		sets, err := e.survivingSets(filter)
		if err != nil {
			return err
		}

		month2index := make(map[monthKey]int)
		rows = make([]MonthTotal, 0)
		for _, fs := range sets {
			key := monthKey{year: fs.year, month: fs.month}
			i, ok := month2index[key]
			if !ok {
				i = len(rows)
				month2index[key] = i
				rows = append(rows, MonthTotal{Year: fs.year, Month: fs.month})
			}
			rows[i].TotalWeight += fs.set.Volume()
		}

		if e.monthOnlyOrdering {
			sort.SliceStable(rows, func(i, j int) bool {
				return rows[i].Month < rows[j].Month
			})
			return nil
		}

		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Year != rows[j].Year {
				return rows[i].Year < rows[j].Year
			}
			return rows[i].Month < rows[j].Month
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Weight lists the weight of every surviving set with at least one rep,
// in workout, block, set order.
func (e *Engine) Weight(ctx context.Context, filter *Filter) (weights []int, err error) {
	err = e.run(ctx, OpWeight, "engine.weight", filter, func() error {
		sets, err := e.survivingSets(filter)
		if err != nil {
			return err
		}
		weights = make([]int, 0, len(sets))
		for _, fs := range sets {
			if fs.set.Reps > 0 {
				weights = append(weights, fs.set.Kilos())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return weights, nil
}

// MaxWeight returns the heaviest weight lifted for at least one rep.
// The bool is false when no set matches the filter.
func (e *Engine) MaxWeight(ctx context.Context, filter *Filter) (int, bool, error) {
	weights, err := e.Weight(ctx, filter)
	if err != nil {
		return 0, false, err
	}
	maxWeight, found := heaviest(weights)
	return maxWeight, found, nil
}

func heaviest(weights []int) (int, bool) {
	if len(weights) == 0 {
		return 0, false
	}
	maxWeight := weights[0]
	for _, w := range weights[1:] {
		maxWeight = max(maxWeight, w)
	}
	return maxWeight, true
}

// BestMonth returns the row with the highest total. The first row wins ties.
func BestMonth(rows []MonthTotal) (MonthTotal, bool) {
	if len(rows) == 0 {
		return MonthTotal{}, false
	}
	best := rows[0]
	for _, r := range rows[1:] {
		if r.TotalWeight > best.TotalWeight {
			best = r
		}
	}
	return best, true
}

func (e *Engine) run(
	ctx context.Context,
	op, spanName string,
	filter *Filter,
	query func() error,
) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, spanName)
	span.SetAttributes(attribute.String("filter", filter.Key()))

	defer func(begin time.Time) {
		if r := recover(); r != nil {
			err = &QueryError{Op: op, Err: fmt.Errorf("panic: %v", r)}
		}
		e.observe(op, begin, err)
		tracing.EndSpanWithErrCheck(span, err)
	}(time.Now())

	if qErr := query(); qErr != nil {
		return &QueryError{Op: op, Err: qErr}
	}
	return nil
}

func (e *Engine) observe(op string, begin time.Time, err error) {
	if e.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	e.metrics.CounterQueries.WithLabelValues(op, status).Inc()
	e.metrics.HistQueryDuration.WithLabelValues(op).Observe(time.Since(begin).Seconds())
}

// survivingSets runs the shared pipeline:
// filter workouts -> flatten to blocks -> filter blocks -> flatten to sets.
func (e *Engine) survivingSets(filter *Filter) ([]flatSet, error) {
	if e.snapshot == nil {
		return nil, errNoSnapshot
	}
	workouts := filterWorkouts(e.snapshot.Workouts, filter)
	blocks := filterBlocks(flattenWorkouts(workouts), filter)
	return flattenBlocks(blocks), nil
}

func filterWorkouts(workouts []Workout, filter *Filter) []*Workout {
	kept := make([]*Workout, 0, len(workouts))
	for i := range workouts {
		if filter.matchesWorkout(&workouts[i]) {
			kept = append(kept, &workouts[i])
		}
	}
	return kept
}

func flattenWorkouts(workouts []*Workout) []flatBlock {
	var blocks []flatBlock
	for _, w := range workouts {
		year, month, _ := w.CompletedAt.Date()
		for i := range w.Blocks {
			blocks = append(blocks, flatBlock{
				year:  year,
				month: month,
				block: &w.Blocks[i],
			})
		}
	}
	return blocks
}

func filterBlocks(blocks []flatBlock, filter *Filter) []flatBlock {
	kept := blocks[:0:0]
	for _, b := range blocks {
		if filter.matchesBlock(b.block) {
			kept = append(kept, b)
		}
	}
	return kept
}

func flattenBlocks(blocks []flatBlock) []flatSet {
	var sets []flatSet
	for _, b := range blocks {
		for _, s := range b.block.Sets {
			sets = append(sets, flatSet{
				year:  b.year,
				month: b.month,
				set:   s,
			})
		}
	}
	return sets
}

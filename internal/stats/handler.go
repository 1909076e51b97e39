package stats

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/liftstats/internal/answers"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/workouts"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type statsEngine interface {
	TotalWeight(ctx context.Context, filter *workouts.Filter) (int, error)
	TotalWeightByMonth(ctx context.Context, filter *workouts.Filter) ([]workouts.MonthTotal, error)
	Weight(ctx context.Context, filter *workouts.Filter) ([]int, error)
}

type answerer interface {
	Answer(ctx context.Context) (*answers.Answers, error)
}

type TotalWeightResponse struct {
	Total int `json:"total"`
}

type MonthRow struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Label       string `json:"label"`
	TotalWeight int    `json:"totalWeight"`
}

type MonthsResponse struct {
	Months []MonthRow `json:"months"`
}

type WeightsResponse struct {
	Weights []int `json:"weights"`
}

type Handler struct {
	engine   statsEngine
	answerer answerer
}

func NewHandler(engine statsEngine, answerer answerer) *Handler {
	return &Handler{
		engine:   engine,
		answerer: answerer,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	statsRouter := router.PathPrefix("/stats").Subrouter()
	statsRouter.HandleFunc("/total-weight", handler.HandleTotalWeight).Methods("GET", "OPTIONS").Name("total-weight")
	statsRouter.HandleFunc("/total-weight/months", handler.HandleTotalWeightByMonth).Methods("GET", "OPTIONS").Name("total-weight-months")
	statsRouter.HandleFunc("/weights", handler.HandleWeights).Methods("GET", "OPTIONS").Name("weights")
	statsRouter.HandleFunc("/answers", handler.HandleAnswers).Methods("GET", "OPTIONS").Name("answers")
}

func (handler *Handler) HandleTotalWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.total_weight")
	defer span.End()

	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("filter", filter.Key()))

	total, err := handler.engine.TotalWeight(ctx, filter)
	if err != nil {
		log.Errorf("total weight [%s]: %s", filter.Key(), err)
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, TotalWeightResponse{Total: total}, http.StatusOK)
}

func (handler *Handler) HandleTotalWeightByMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.total_weight_by_month")
	defer span.End()

	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("filter", filter.Key()))

	months, err := handler.engine.TotalWeightByMonth(ctx, filter)
	if err != nil {
		log.Errorf("total weight by month [%s]: %s", filter.Key(), err)
		writeError(w, err)
		return
	}

	resp := MonthsResponse{
		Months: make([]MonthRow, 0, len(months)),
	}
	for _, m := range months {
		resp.Months = append(resp.Months, MonthRow{
			Year:        m.Year,
			Month:       int(m.Month),
			Label:       answers.FormatMonth(m),
			TotalWeight: m.TotalWeight,
		})
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleWeights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.weights")
	defer span.End()

	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("filter", filter.Key()))

	weights, err := handler.engine.Weight(ctx, filter)
	if err != nil {
		log.Errorf("weights [%s]: %s", filter.Key(), err)
		writeError(w, err)
		return
	}
	if weights == nil {
		weights = []int{}
	}

	pkg.WriteJSON(w, WeightsResponse{Weights: weights}, http.StatusOK)
}

func (handler *Handler) HandleAnswers(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.answers")
	defer span.End()

	result, err := handler.answerer.Answer(ctx)
	if err != nil {
		log.Errorf("answers: %s", err)
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func parseFilter(w http.ResponseWriter, r *http.Request) (*workouts.Filter, bool) {
	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		log.Debugf("bad stats request [%s]: %s", r.URL.RawQuery, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return filter, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, answers.ErrNoData), errors.Is(err, workouts.ErrNotFound):
		pkg.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, workouts.ErrRangeInvalid):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		pkg.WriteJSONError(w, "failed to compute stats", http.StatusInternalServerError)
	}
}

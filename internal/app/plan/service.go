package plan

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"bitbucket.org/almantas/shiftplan/internal/app/plan/api"
	"bitbucket.org/almantas/shiftplan/internal/pkg/cmdapp"
	"bitbucket.org/almantas/shiftplan/internal/pkg/matching"
	"bitbucket.org/almantas/shiftplan/internal/pkg/metrics"
	"bitbucket.org/almantas/shiftplan/internal/pkg/planner"

	"github.com/facebookgo/grace/gracehttp"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heptiolabs/healthcheck"
)

type serviceMetric struct {
	planResponseDur prometheus.ObserverVec
	planRequestSize prometheus.ObserverVec
}

// ServiceData keeps data required for service work
type ServiceData struct {
	Port    int
	health  healthcheck.Handler
	metrics serviceMetric
}

//StartWebServer starts the HTTP service and listens for the requests
func StartWebServer(data *ServiceData) error {
	cmdapp.Log.Infof("Starting HTTP service at %d", data.Port)
	r := NewRouter(data)

	portStr := strconv.Itoa(data.Port)
	srv := http.Server{
		Addr:              ":" + portStr,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		Handler:           r,
	}

	w := cmdapp.Log.Writer()
	defer w.Close()
	l := log.New(w, "", 0)
	gracehttp.SetLogger(l)

	return gracehttp.Serve(&srv)
}

//NewRouter creates the router for HTTP service
func NewRouter(data *ServiceData) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	ph := promhttp.InstrumentHandlerDuration(data.metrics.planResponseDur,
		promhttp.InstrumentHandlerRequestSize(data.metrics.planRequestSize, planHandler{data: data}))
	router.Methods("POST").Path("/plan").Handler(ph)
	router.Methods("GET").Path("/metrics").Handler(promhttp.Handler())
	if data.health != nil {
		router.Methods("GET").Path("/live").HandlerFunc(data.health.LiveEndpoint)
		router.Methods("GET").Path("/ready").HandlerFunc(data.health.ReadyEndpoint)
	}
	return router
}

type planHandler struct {
	data *ServiceData
}

func (h planHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	cmdapp.Log.Infof("Plan request %s from %s", id, r.Host)

	dec := json.NewDecoder(r.Body)
	var inData api.PlanRequest
	err := dec.Decode(&inData)
	if err != nil {
		http.Error(w, "Invalid or missing JSON body", http.StatusBadRequest)
		cmdapp.Log.Error(errors.Wrap(err, "Can't decode request"))
		return
	}
	err = validateRequest(&inData)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		cmdapp.Log.Error(err)
		return
	}
	shiftStart, err := parseShiftStart(inData.ShiftStart)
	if err != nil {
		http.Error(w, "Invalid 'shift_start' format. Use ISO 8601", http.StatusBadRequest)
		cmdapp.Log.Error(err)
		return
	}

	res := planner.Plan(mapRequest(&inData, shiftStart))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", id)
	encoder := json.NewEncoder(w)
	err = encoder.Encode(mapResponse(res))
	if err != nil {
		http.Error(w, "Can not prepare result", http.StatusInternalServerError)
		cmdapp.Log.Error(err)
		return
	}
}

func validateRequest(data *api.PlanRequest) error {
	if data.ShiftLengthSeconds < 0 {
		return errors.New("Wrong shift_length_seconds")
	}
	for _, po := range data.ProductionOrders {
		if po.Quantity < 0 {
			return errors.Errorf("Wrong quantity for order '%s'", po.OrderNumber)
		}
		if po.TimeToComplete < 0 {
			return errors.Errorf("Wrong time_to_complete for order '%s'", po.OrderNumber)
		}
	}
	return nil
}

func parseShiftStart(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	res, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "Can't parse shift_start "+value)
	}
	return res, nil
}

func mapRequest(data *api.PlanRequest, shiftStart time.Time) *planner.Input {
	res := &planner.Input{ShiftStart: shiftStart, ShiftLength: data.ShiftLengthSeconds}
	res.Lines = data.LinesAvailable
	for _, e := range data.EmployeesAvailable {
		res.Employees = append(res.Employees,
			matching.Employee{ID: e.ID, QualifiedLines: e.QualifiedLines})
	}
	for _, po := range data.ProductionOrders {
		res.Orders = append(res.Orders, planner.Order{Number: po.OrderNumber,
			Material: po.MaterialNumber, Quantity: po.Quantity,
			TimeToComplete: po.TimeToComplete})
	}
	for _, m := range data.Materials {
		res.Materials = append(res.Materials,
			planner.Material{Number: m.MaterialNumber, Lines: m.Lines})
	}
	return res
}

func mapResponse(res *planner.Result) *api.PlanResponse {
	out := &api.PlanResponse{ShiftStart: res.ShiftStart.Format(time.RFC3339),
		Lines: res.Lines, Assignment: res.Assignment,
		Sequence: make(map[string][]api.Placement, len(res.Sequence))}
	for l, seq := range res.Sequence {
		placements := []api.Placement{}
		for _, p := range seq {
			placements = append(placements, api.Placement{OrderNumber: p.OrderNumber,
				StartTimestamp: p.Start.Format(time.RFC3339)})
		}
		out.Sequence[l] = placements
	}
	return out
}

func initMetrics(data *ServiceData) error {
	namespace := "plan_service"
	data.metrics.planResponseDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_durations_seconds",
			Help:      "Request latency distributions.",
		}, nil)
	err := metrics.Register(data.metrics.planResponseDur)
	if err != nil {
		return err
	}
	data.metrics.planRequestSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_size_bytes",
			Help:      "Request size distributions.",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 6),
		}, nil)
	return metrics.Register(data.metrics.planRequestSize)
}

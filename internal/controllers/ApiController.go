package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"

	"datecalc/internal/engine"
	"datecalc/internal/models"
	"datecalc/internal/providers"
	"datecalc/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.CalculatorServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewApiController(logger providers.Logger, service services.CalculatorServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

type differenceRequest struct {
	From  string   `json:"from" validate:"required"`
	To    string   `json:"to" validate:"required"`
	Units []string `json:"units"`
}

type offsetRequest struct {
	Start  string `json:"start" validate:"required"`
	Years  int    `json:"years" validate:"min:0|max:999"`
	Months int    `json:"months" validate:"min:0|max:999"`
	Days   int    `json:"days" validate:"min:0|max:999"`
}

type historyResponse struct {
	Records []*models.HistoryRecord `json:"records"`
}

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// parseUnits maps unit names to the engine mask; no units means all of
// them.
func parseUnits(names []string) (engine.DateUnit, error) {
	if len(names) == 0 {
		return engine.AllUnits, nil
	}
	var units engine.DateUnit
	for _, name := range names {
		switch name {
		case "years":
			units |= engine.UnitYear
		case "months":
			units |= engine.UnitMonth
		case "weeks":
			units |= engine.UnitWeek
		case "days":
			units |= engine.UnitDay
		default:
			return 0, fmt.Errorf("unknown unit %q", name)
		}
	}
	return units, nil
}

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	if v := validate.Struct(payload); !v.Validate() {
		http.Error(w, v.Errors.One(), http.StatusBadRequest)
		return false
	}
	return true
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) DiffDates(w http.ResponseWriter, r *http.Request) {
	var payload differenceRequest
	if !decodeRequest(w, r, &payload) {
		return
	}

	from, err := parseDate(payload.From)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	to, err := parseDate(payload.To)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	units, err := parseUnits(payload.Units)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cacheKey := fmt.Sprintf("diff:%s:%s:%s:%d", ac.service.CalendarID(), payload.From, payload.To, units)
	ac.serveFromCacheOrCompute(w, cacheKey, func() (any, error) {
		ac.metrics.IncCalculations(models.OpDifference)
		ac.logger.Debugf(providers.TypeCalc, "difference %s .. %s", payload.From, payload.To)
		return ac.service.ComputeDifference(from, to, units)
	})
}

func (ac *ApiController) AddToDate(w http.ResponseWriter, r *http.Request) {
	ac.applyOffset(w, r, models.OpAdd)
}

func (ac *ApiController) SubtractFromDate(w http.ResponseWriter, r *http.Request) {
	ac.applyOffset(w, r, models.OpSubtract)
}

func (ac *ApiController) applyOffset(w http.ResponseWriter, r *http.Request, op string) {
	var payload offsetRequest
	if !decodeRequest(w, r, &payload) {
		return
	}

	start, err := parseDate(payload.Start)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	cacheKey := fmt.Sprintf("%s:%s:%s:%d:%d:%d", op, ac.service.CalendarID(), payload.Start, payload.Years, payload.Months, payload.Days)
	ac.serveFromCacheOrCompute(w, cacheKey, func() (any, error) {
		ac.metrics.IncCalculations(op)
		ac.logger.Debugf(providers.TypeCalc, "%s %s %dy %dm %dd", op, payload.Start, payload.Years, payload.Months, payload.Days)

		var result *models.OffsetResult
		var err error
		if op == models.OpSubtract {
			result, err = ac.service.SubtractFromDate(start, payload.Years, payload.Months, payload.Days)
		} else {
			result, err = ac.service.AddToDate(start, payload.Years, payload.Months, payload.Days)
		}
		if err != nil {
			return nil, err
		}
		if !result.InRange {
			ac.metrics.IncOutOfRange()
		}
		return result, nil
	})
}

func (ac *ApiController) GetHistory(w http.ResponseWriter, r *http.Request) {
	gson, err := json.Marshal(historyResponse{Records: ac.service.GetHistory()})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) ClearHistory(w http.ResponseWriter, r *http.Request) {
	ac.service.ClearHistory()
	ac.logger.Infof(providers.TypeHistory, "History cleared")
	w.WriteHeader(http.StatusNoContent)
}

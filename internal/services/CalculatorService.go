package services

import (
	"fmt"
	"time"

	"datecalc/internal/calendar"
	"datecalc/internal/engine"
	"datecalc/internal/models"
	"datecalc/internal/structures"
)

// MaxOffsetValue bounds each duration field of an offset request, matching
// the range of the offset pickers this service was built for.
const MaxOffsetValue = 999

// longDateFormat renders resulting dates for display.
const longDateFormat = "January 2, 2006"

type CalculatorServiceInterface interface {
	ComputeDifference(from, to time.Time, units engine.DateUnit) (*models.DifferenceResult, error)
	AddToDate(start time.Time, years, months, days int) (*models.OffsetResult, error)
	SubtractFromDate(start time.Time, years, months, days int) (*models.OffsetResult, error)
	CalendarID() string
	GetHistory() []*models.HistoryRecord
	ClearHistory()
	GetHistorySize() int
	PruneExpired() []*models.HistoryRecord
	GetSnapshot() *models.Storage
	PutRecords(records []*models.HistoryRecord)
}

type CalculatorService struct {
	engine    *engine.Engine
	history   *models.HistoryStore
	retention time.Duration
}

func NewCalculatorService(conf *structures.Config) (CalculatorServiceInterface, error) {
	sys, err := calendar.New(conf.Calendar.Identifier)
	if err != nil {
		return nil, err
	}
	return &CalculatorService{
		engine:    engine.New(sys),
		history:   models.NewHistoryStore(conf.History.MaxEntries),
		retention: conf.History.Retention,
	}, nil
}

// ComputeDifference clips both dates to midnight UTC, then computes the
// requested decomposition and the flat day count in one call, as the two
// always accompany each other in the output.
func (cs *CalculatorService) ComputeDifference(from, to time.Time, units engine.DateUnit) (*models.DifferenceResult, error) {
	clippedFrom := engine.ClipTime(from)
	clippedTo := engine.ClipTime(to)

	diff, err := cs.engine.GetDateDifference(clippedFrom, clippedTo, units)
	if err != nil {
		return nil, err
	}
	daysOnly, err := cs.engine.GetDateDifference(clippedFrom, clippedTo, engine.UnitDay)
	if err != nil {
		return nil, err
	}

	result := &models.DifferenceResult{
		Years:     diff.Years,
		Months:    diff.Months,
		Weeks:     diff.Weeks,
		Days:      diff.Days,
		TotalDays: daysOnly.Days,
		SameDates: daysOnly.Days == 0,
		Summary:   FormatDifference(diff),
	}
	if !result.SameDates {
		result.SummaryInDays = FormatDays(result.TotalDays)
	}

	expression := fmt.Sprintf("%s .. %s", clippedFrom.Format("2006-01-02"), clippedTo.Format("2006-01-02"))
	cs.history.Add(models.NewHistoryRecord(models.OpDifference, cs.CalendarID(), expression, result.Summary))

	return result, nil
}

// AddToDate applies the duration forward. The start date keeps its time of
// day; out-of-range results come back with InRange=false rather than as an
// error.
func (cs *CalculatorService) AddToDate(start time.Time, years, months, days int) (*models.OffsetResult, error) {
	return cs.applyOffset(models.OpAdd, start, years, months, days)
}

// SubtractFromDate applies the duration backward.
func (cs *CalculatorService) SubtractFromDate(start time.Time, years, months, days int) (*models.OffsetResult, error) {
	return cs.applyOffset(models.OpSubtract, start, years, months, days)
}

func (cs *CalculatorService) applyOffset(op string, start time.Time, years, months, days int) (*models.OffsetResult, error) {
	if err := validateOffset(years, months, days); err != nil {
		return nil, err
	}

	dur := engine.DateDifference{Years: years, Months: months, Days: days}
	var (
		result time.Time
		ok     bool
	)
	sign := "+"
	if op == models.OpSubtract {
		result, ok = cs.engine.SubtractDuration(start, dur)
		sign = "-"
	} else {
		result, ok = cs.engine.AddDuration(start, dur)
	}

	expression := fmt.Sprintf("%s %s %dy %dm %dd", start.UTC().Format("2006-01-02"), sign, years, months, days)

	if !ok {
		cs.history.Add(models.NewHistoryRecord(op, cs.CalendarID(), expression, "out of range"))
		return &models.OffsetResult{InRange: false}, nil
	}

	formatted := result.UTC().Format(longDateFormat)
	cs.history.Add(models.NewHistoryRecord(op, cs.CalendarID(), expression, formatted))

	return &models.OffsetResult{
		InRange:   true,
		Result:    &result,
		Formatted: formatted,
	}, nil
}

func validateOffset(years, months, days int) error {
	for _, v := range []int{years, months, days} {
		if v < 0 || v > MaxOffsetValue {
			return fmt.Errorf("offset value %d outside 0..%d", v, MaxOffsetValue)
		}
	}
	return nil
}

func (cs *CalculatorService) CalendarID() string {
	return cs.engine.Calendar().Identifier()
}

func (cs *CalculatorService) GetHistory() []*models.HistoryRecord {
	return cs.history.List()
}

func (cs *CalculatorService) ClearHistory() {
	cs.history.Clear()
}

func (cs *CalculatorService) GetHistorySize() int {
	return cs.history.Size()
}

// PruneExpired removes records older than the configured retention and
// returns them so the caller can archive them. A zero retention keeps
// everything.
func (cs *CalculatorService) PruneExpired() []*models.HistoryRecord {
	if cs.retention <= 0 {
		return nil
	}
	return cs.history.PruneOlderThan(time.Now().UTC().Add(-cs.retention))
}

func (cs *CalculatorService) GetSnapshot() *models.Storage {
	return cs.history.Snapshot()
}

func (cs *CalculatorService) PutRecords(records []*models.HistoryRecord) {
	cs.history.Put(records)
}

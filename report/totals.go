package report

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Totals counts the outcomes of one test item. Counters may be recorded concurrently.
type Totals struct {
	Item string

	passed    atomic.Int64
	failed    atomic.Int64
	exception atomic.Int64
}

func NewTotals(item string) *Totals {
	return &Totals{Item: item}
}

func (t *Totals) RecordPassed()    { t.passed.Add(1) }
func (t *Totals) RecordFailed()    { t.failed.Add(1) }
func (t *Totals) RecordException() { t.exception.Add(1) }

// Set* restore counters, for instance from a saved report.

func (t *Totals) SetPassed(n int64)    { t.passed.Store(n) }
func (t *Totals) SetFailed(n int64)    { t.failed.Store(n) }
func (t *Totals) SetException(n int64) { t.exception.Store(n) }

func (t *Totals) Passed() int64    { return t.passed.Load() }
func (t *Totals) Failed() int64    { return t.failed.Load() }
func (t *Totals) Exception() int64 { return t.exception.Load() }

// Total is passed + failed + exception.
func (t *Totals) Total() int64 {
	return t.Passed() + t.Failed() + t.Exception()
}

// Add folds the counters of other into t.
func (t *Totals) Add(other *Totals) {
	t.passed.Add(other.Passed())
	t.failed.Add(other.Failed())
	t.exception.Add(other.Exception())
}

// Percentages are rounded to 2 decimals and are 0 while nothing is recorded.

func (t *Totals) PercentagePassed() float64    { return percentage(t.Passed(), t.Total()) }
func (t *Totals) PercentageFailed() float64    { return percentage(t.Failed(), t.Total()) }
func (t *Totals) PercentageException() float64 { return percentage(t.Exception(), t.Total()) }

func percentage(n, total int64) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(n)*10000/float64(total)) / 100
}

func (t *Totals) String() string {
	return fmt.Sprintf(
		"Totals[item=%s, passed=%d, failed=%d, exception=%d, total=%d, "+
			"percentagePassed=%.2f, percentageFailed=%.2f, percentageException=%.2f]",
		t.Item, t.Passed(), t.Failed(), t.Exception(), t.Total(),
		t.PercentagePassed(), t.PercentageFailed(), t.PercentageException(),
	)
}

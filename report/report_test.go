package report_test

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"param-supplier/report"
)

func ExampleTotals() {
	t := report.NewTotals("TestAdd")
	t.RecordPassed()
	t.RecordPassed()
	t.RecordFailed()
	t.RecordException()

	fmt.Println(t.Total(), t.PercentagePassed(), t.PercentageFailed(), t.PercentageException())
	fmt.Println(t)

	// Output:
	// 4 50 25 25
	// Totals[item=TestAdd, passed=2, failed=1, exception=1, total=4, percentagePassed=50.00, percentageFailed=25.00, percentageException=25.00]
}

func TestTotals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                                  string
		passed, failed, exception             int
		wantPassed, wantFailed, wantException float64
	}{
		{"empty", 0, 0, 0, 0, 0, 0},
		{"all passed", 3, 0, 0, 100, 0, 0},
		{"thirds", 1, 1, 1, 33.33, 33.33, 33.33},
		{"two thirds", 2, 1, 0, 66.67, 33.33, 0},
		{"even mix", 2, 1, 1, 50, 25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			totals := report.NewTotals(tt.name)
			for range tt.passed {
				totals.RecordPassed()
			}
			for range tt.failed {
				totals.RecordFailed()
			}
			for range tt.exception {
				totals.RecordException()
			}

			assert.Equal(t, int64(tt.passed+tt.failed+tt.exception), totals.Total())
			assert.InDelta(t, tt.wantPassed, totals.PercentagePassed(), 1e-9)
			assert.InDelta(t, tt.wantFailed, totals.PercentageFailed(), 1e-9)
			assert.InDelta(t, tt.wantException, totals.PercentageException(), 1e-9)
		})
	}
}

func TestTotalsConcurrent(t *testing.T) {
	t.Parallel()

	totals := report.NewTotals("concurrent")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			totals.RecordPassed()
			totals.RecordFailed()
			totals.RecordException()
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(150), totals.Total())
	assert.InDelta(t, 33.33, totals.PercentagePassed(), 1e-9)
}

func TestTotalsRestore(t *testing.T) {
	t.Parallel()

	totals := report.NewTotals("restored")
	totals.RecordFailed()

	totals.SetPassed(6)
	totals.SetFailed(3)
	totals.SetException(1)

	assert.Equal(t, int64(10), totals.Total())
	assert.InDelta(t, 60, totals.PercentagePassed(), 1e-9)
	assert.InDelta(t, 30, totals.PercentageFailed(), 1e-9)
	assert.InDelta(t, 10, totals.PercentageException(), 1e-9)

	totals.RecordPassed()
	assert.Equal(t, int64(7), totals.Passed())
}

func TestBook(t *testing.T) {
	t.Parallel()

	b := report.NewBook()
	b.Item("TestB").RecordPassed()
	b.Item("TestA").RecordFailed()
	b.Item("TestB").RecordException()

	all := b.All()
	require.Len(t, all, 2)
	assert.Equal(t, "TestB", all[0].Item)
	assert.Equal(t, "TestA", all[1].Item)
	assert.Same(t, all[0], b.Item("TestB"))

	sum := b.Sum("all")
	assert.Equal(t, "all", sum.Item)
	assert.Equal(t, int64(1), sum.Passed())
	assert.Equal(t, int64(1), sum.Failed())
	assert.Equal(t, int64(1), sum.Exception())
	assert.Equal(t, int64(3), sum.Total())
}

func TestWriteMetrics(t *testing.T) {
	t.Parallel()

	add := report.NewTotals("TestAdd")
	add.RecordPassed()
	add.RecordPassed()
	add.RecordException()

	sub := report.NewTotals("TestSub")
	sub.RecordFailed()

	var buf bytes.Buffer
	require.NoError(t, report.WriteMetrics(&buf, add, sub))

	out := buf.String()
	assert.Contains(t, out, "# TYPE param_supplier_tests_total counter")
	assert.Contains(t, out, `param_supplier_tests_total{item="TestAdd",outcome="passed"} 2`)
	assert.Contains(t, out, `param_supplier_tests_total{item="TestAdd",outcome="exception"} 1`)
	assert.Contains(t, out, `param_supplier_tests_total{item="TestSub",outcome="failed"} 1`)
	assert.Contains(t, out, `param_supplier_tests_total{item="TestSub",outcome="passed"} 0`)
	assert.Equal(t, 6, strings.Count(out, "param_supplier_tests_total{"), "one sample per outcome per item")

	family := report.Family(add)
	assert.Equal(t, report.MetricName, family.GetName())
	assert.Len(t, family.GetMetric(), 3)
	assert.InDelta(t, 2.0, family.GetMetric()[0].GetCounter().GetValue(), 0)
}

func TestRender(t *testing.T) {
	t.Parallel()

	ok := report.NewTotals("TestOK")
	ok.RecordPassed()

	line := report.Render(ok, report.PlainTheme())
	assert.Contains(t, line, "+ TestOK")
	assert.Contains(t, line, "passed 1 (100.00%)")
	assert.Contains(t, line, "failed 0 (0.00%)")
	assert.Contains(t, line, "total 1")

	bad := report.NewTotals("TestBad")
	bad.RecordPassed()
	bad.RecordException()

	line = report.Render(bad, report.PlainTheme())
	assert.Contains(t, line, "x TestBad")
	assert.Contains(t, line, "exception 1 (50.00%)")

	b := report.NewBook()
	b.Item("TestOK").RecordPassed()
	b.Item("TestBad").RecordFailed()

	lines := strings.Split(report.RenderBook(b, report.PlainTheme()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "all")
	assert.Contains(t, lines[2], "total 2")

	assert.Contains(t, report.Render(ok, report.DefaultTheme()), "TestOK")
}

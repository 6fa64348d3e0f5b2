package report

import (
	"fmt"
	"io"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

const (
	MetricName = "param_supplier_tests_total"
	metricHelp = "Test outcomes recorded per item."
)

// Family builds the counter family of the given totals: one sample per item and outcome.
func Family(totals ...*Totals) *dto.MetricFamily {
	family := &dto.MetricFamily{
		Name: proto.String(MetricName),
		Help: proto.String(metricHelp),
		Type: dto.MetricType_COUNTER.Enum(),
	}

	for _, t := range totals {
		for _, outcome := range []struct {
			name  string
			value int64
		}{
			{"passed", t.Passed()},
			{"failed", t.Failed()},
			{"exception", t.Exception()},
		} {
			family.Metric = append(family.Metric, &dto.Metric{
				Label: []*dto.LabelPair{
					{Name: proto.String("item"), Value: proto.String(t.Item)},
					{Name: proto.String("outcome"), Value: proto.String(outcome.name)},
				},
				Counter: &dto.Counter{Value: proto.Float64(float64(outcome.value))},
			})
		}
	}

	return family
}

// WriteMetrics writes the totals in the Prometheus text exposition format.
func WriteMetrics(w io.Writer, totals ...*Totals) error {
	if _, err := expfmt.MetricFamilyToText(w, Family(totals...)); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}

	return nil
}

package metrics

import (
	"github.com/goodnatureofminers/collider-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
)

type TargetSet interface {
	Len() int
	FilterBytes() uint64
	FillRatio() float64
	EstimatedFalsePositiveRate() float64
	FalsePositives() uint64
}

var (
	targetSetAddressesDesc = prometheus.NewDesc(
		"collider_target_set_addresses",
		"Distinct target addresses held in memory.",
		[]string{"chain"}, nil,
	)
	targetSetFilterBytesDesc = prometheus.NewDesc(
		"collider_target_set_filter_bytes",
		"Memory used by the bloom filter tier.",
		[]string{"chain"}, nil,
	)
	targetSetFillRatioDesc = prometheus.NewDesc(
		"collider_target_set_fill_ratio",
		"Estimated fraction of set bits in the bloom filter.",
		[]string{"chain"}, nil,
	)
	targetSetEstimatedFPRDesc = prometheus.NewDesc(
		"collider_target_set_estimated_false_positive_rate",
		"Bloom filter false-positive rate estimated from its fill.",
		[]string{"chain"}, nil,
	)
	targetSetFalsePositivesDesc = prometheus.NewDesc(
		"collider_target_set_false_positives_total",
		"Bloom positives rejected by the exact tier.",
		[]string{"chain"}, nil,
	)
)

// TargetSetCollector reads the loaded target set on every scrape.
type TargetSetCollector struct {
	set   TargetSet
	chain string
}

func NewTargetSetCollector(chain model.Chain, set TargetSet) *TargetSetCollector {
	return &TargetSetCollector{set: set, chain: string(chain)}
}

func (c *TargetSetCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- targetSetAddressesDesc
	ch <- targetSetFilterBytesDesc
	ch <- targetSetFillRatioDesc
	ch <- targetSetEstimatedFPRDesc
	ch <- targetSetFalsePositivesDesc
}

func (c *TargetSetCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(targetSetAddressesDesc, prometheus.GaugeValue, float64(c.set.Len()), c.chain)
	ch <- prometheus.MustNewConstMetric(targetSetFilterBytesDesc, prometheus.GaugeValue, float64(c.set.FilterBytes()), c.chain)
	ch <- prometheus.MustNewConstMetric(targetSetFillRatioDesc, prometheus.GaugeValue, c.set.FillRatio(), c.chain)
	ch <- prometheus.MustNewConstMetric(targetSetEstimatedFPRDesc, prometheus.GaugeValue, c.set.EstimatedFalsePositiveRate(), c.chain)
	ch <- prometheus.MustNewConstMetric(targetSetFalsePositivesDesc, prometheus.CounterValue, float64(c.set.FalsePositives()), c.chain)
}

package metrics

import (
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loaderProgress = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "collider",
		Subsystem: "address_loader",
		Name:      "loaded_addresses",
		Help:      "Addresses read from the bulk source so far.",
	}, []string{"chain"})

	loaderExpected = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "collider",
		Subsystem: "address_loader",
		Name:      "expected_addresses",
		Help:      "Address count reported by the bulk source.",
	}, []string{"chain"})

	loaderDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "collider",
		Subsystem: "address_loader",
		Name:      "load_duration_seconds",
		Help:      "Time taken to build the target set.",
	}, []string{"chain"})

	loaderStatusTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collider",
		Subsystem: "address_loader",
		Name:      "loads_total",
		Help:      "Count of target set loads.",
	}, []string{"chain", "status"})
)

// AddressLoader tracks progress of building the target set.
type AddressLoader struct {
	chain string
}

func NewAddressLoader(chain model.Chain) *AddressLoader {
	if chain == "" {
		chain = "unknown"
	}
	return &AddressLoader{chain: string(chain)}
}

// ObserveProgress matches the loader progress callback signature.
func (m AddressLoader) ObserveProgress(loaded, total uint64) {
	loaderProgress.WithLabelValues(m.chain).Set(float64(loaded))
	loaderExpected.WithLabelValues(m.chain).Set(float64(total))
}

func (m AddressLoader) ObserveLoad(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	loaderStatusTotal.WithLabelValues(m.chain, status).Inc()
	if err == nil {
		loaderDuration.WithLabelValues(m.chain).Set(time.Since(started).Seconds())
	}
}

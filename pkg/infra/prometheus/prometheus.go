package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Every counter carries the validator that produced it.
	validatorLabels = []string{"validator"}

	ValidationTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "triggerdeck_validation_total",
			Help: "Total validation calls by validator",
		},
		validatorLabels,
	)

	// Rejections are the abuse-monitoring signal: a spike in
	// policy_rejected webhook URLs usually means someone is probing for
	// SSRF.
	ValidationRejectedTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "triggerdeck_validation_rejected_total",
			Help: "Validation rejections by validator and reason",
		},
		append(validatorLabels, "reason"),
	)
)

func init() {
	registerer.MustRegister(collectors.NewGoCollector())
	registerer.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Registry exposes the private registry for the /metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}

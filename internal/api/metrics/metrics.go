// Package metrics defines and registers all custom Prometheus metrics for the
// smart home API. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics register with the default Prometheus registry at package load;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "smarthome"

// EntitiesCreatedTotal counts successfully created entities.
// Label:
//   - entity: "user", "house", "room", or "device"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entities created, by entity kind.",
	},
	[]string{"entity"},
)

// EntitiesDeletedTotal counts successfully deleted entities.
// Label:
//   - entity: "user", "house", "room", or "device"
var EntitiesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_deleted_total",
		Help:      "Total number of entities deleted, by entity kind.",
	},
	[]string{"entity"},
)

// ValidationFailuresTotal counts create/update requests rejected by a
// construction invariant.
// Label:
//   - entity: "user", "house", "room", or "device"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected by entity validation.",
	},
	[]string{"entity"},
)

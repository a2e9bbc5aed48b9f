// Package metrics holds the bot's Prometheus collectors, served on the
// web API's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandsTotal counts handled chat commands by name.
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kotelbot_commands_total",
		Help: "Number of chat commands handled, by command name.",
	}, []string{"command"})

	// OperationsRecorded counts ledger operations written to the store.
	OperationsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kotelbot_operations_recorded_total",
		Help: "Number of ledger operations recorded.",
	})

	// CommandErrors counts commands that failed on storage errors,
	// excluding expected domain rejections like duplicate names.
	CommandErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kotelbot_command_errors_total",
		Help: "Number of chat commands that failed with an infrastructure error.",
	}, []string{"command"})
)

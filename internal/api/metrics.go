package api

import "github.com/prometheus/client_golang/prometheus"

var (
	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "friendsite_commands_total",
			Help: "Total number of commands handled, by action and status code.",
		},
		[]string{"action", "status"},
	)
	commandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "friendsite_command_duration_seconds",
			Help:    "Command handling latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)
)

func init() {
	prometheus.MustRegister(
		commandsTotal,
		commandDuration,
	)
}

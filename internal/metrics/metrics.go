package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values for CommandsProcessed.
const (
	StatusApplied  = "applied"
	StatusRejected = "rejected"
)

var (
	CommandsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "familytree_commands_processed_total",
		Help: "Total number of relation commands interpreted, labelled by relation code and status.",
	}, []string{"relation", "status"})

	InvalidCommands = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "familytree_invalid_commands_total",
		Help: "Total number of rejected command lines, labelled by reason.",
	}, []string{"reason"})

	TreesPrinted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "familytree_trees_printed_total",
		Help: "Total number of PRINT requests that produced a tree.",
	})

	TreesCleared = promauto.NewCounter(prometheus.CounterOpts{
		Name: "familytree_trees_cleared_total",
		Help: "Total number of CLEAR requests.",
	})

	PersonsRegistered = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "familytree_persons_registered",
		Help: "Current number of persons in the family tree.",
	})

	PrintDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "familytree_print_duration_ms",
		Help:    "Time spent finding the oldest ancestor and printing the tree, in milliseconds.",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500},
	})
)

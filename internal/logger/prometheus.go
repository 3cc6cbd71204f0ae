package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	// statements is registered once, Init may run more than once per process.
	statements     *prometheus.CounterVec //nolint:gochecknoglobals
	statementsOnce sync.Once              //nolint:gochecknoglobals
)

// LevelCounter is a zerolog hook counting log statements of one service per level.
type LevelCounter struct {
	service string
}

// Run implements zerolog.Hook.
func (h LevelCounter) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel {
		statements.WithLabelValues(h.service, level.String()).Inc()
	}
}

// Count returns how often service logged at level.
func (h LevelCounter) Count(level zerolog.Level) prometheus.Counter {
	return statements.WithLabelValues(h.service, level.String())
}

// NewLevelCounter returns the hook for service, exported as log_statements_total.
func NewLevelCounter(service string) LevelCounter {
	statementsOnce.Do(func() {
		statements = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "log_statements_total",
				Help: "Number of log statements, differentiated by service and log level.",
			},
			[]string{"service", "level"},
		)
	})

	return LevelCounter{service: service}
}

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_sessions_opened_total",
		Help: "Planning sessions opened, including snapshot rehydrations.",
	})

	sessionsHydrated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_sessions_hydrated_total",
		Help: "Sessions successfully restored from a stored snapshot.",
	})

	packagesPriced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_packages_priced_total",
		Help: "Package repricings triggered by item mutations.",
	})

	snapshotWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_snapshot_write_failures_total",
		Help: "Snapshot writes that failed and were dropped.",
	})

	recommendationRefresh = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_recommendation_refresh_seconds",
		Help:    "Wall time of a recommendation refresh, catalog fetch included.",
		Buckets: prometheus.DefBuckets,
	})
)

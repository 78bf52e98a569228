// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	ResumesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_resumes_scored_total",
			Help: "Total number of resumes scored, by resulting ranking",
		},
		[]string{"ranking"},
	)

	JobRequirementsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scoring_job_requirements_cache_hits_total",
			Help: "Cache hits when loading parsed job requirements",
		},
	)

	JobRequirementsCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scoring_job_requirements_cache_misses_total",
			Help: "Cache misses when loading parsed job requirements",
		},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_notifications_sent_total",
			Help: "Recruiter notifications sent, by channel",
		},
		[]string{"channel"},
	)
)

// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"resume-workers/internal/common/config"
	"resume-workers/internal/common/database"
	"resume-workers/internal/common/logger"
	"resume-workers/internal/common/observability"

	isr "resume-workers/internal/workers/application/index-score-result"
	nr "resume-workers/internal/workers/application/notify-recruiter"
	ra "resume-workers/internal/workers/application/rank-applications"
	sr "resume-workers/internal/workers/application/score-resume"
	ssr "resume-workers/internal/workers/application/store-score-record"
	vsr "resume-workers/internal/workers/application/validate-scoring-request"
	pjr "resume-workers/internal/workers/job/parse-job-requirements"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient zbc.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		// Test the connection with context
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		// Test the connection
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		// Test the connection with context
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	cacheTTL := time.Duration(cfg.Scoring.JobRequirementsCacheTTL) * time.Second

	// --- Register Workers ---

	// Validation
	if cfg.Workers[vsr.TaskType].Enabled {
		handler, err := vsr.NewHandler(
			&vsr.Config{
				Timeout: time.Duration(cfg.Workers[vsr.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		if err != nil {
			zapLog.Fatal("failed to create validate-scoring-request handler", zap.Error(err))
		}
		startWorker(zeebeClient, vsr.TaskType, cfg.Workers[vsr.TaskType], handler.Handle, zapLog)
	}

	// Job description parsing
	if cfg.Workers[pjr.TaskType].Enabled {
		handler := pjr.NewHandler(
			&pjr.Config{
				CacheTTL: cacheTTL,
				Timeout:  time.Duration(cfg.Workers[pjr.TaskType].Timeout) * time.Millisecond,
			},
			redis.Client, log,
		)
		startWorker(zeebeClient, pjr.TaskType, cfg.Workers[pjr.TaskType], handler.Handle, zapLog)
	}

	// Scoring
	if cfg.Workers[sr.TaskType].Enabled {
		handler := sr.NewHandler(
			&sr.Config{
				CacheTTL: cacheTTL,
				Weights:  cfg.Scoring.Weights,
				Timeout:  time.Duration(cfg.Workers[sr.TaskType].Timeout) * time.Millisecond,
			},
			redis.Client, log,
		)
		startWorker(zeebeClient, sr.TaskType, cfg.Workers[sr.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[ra.TaskType].Enabled {
		handler := ra.NewHandler(
			&ra.Config{
				MaxItems: cfg.Scoring.MaxRankedResults,
				Timeout:  time.Duration(cfg.Workers[ra.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, ra.TaskType, cfg.Workers[ra.TaskType], handler.Handle, zapLog)
	}

	// Persistence
	if cfg.Workers[ssr.TaskType].Enabled {
		handler := ssr.NewHandler(
			&ssr.Config{
				Timeout: time.Duration(cfg.Workers[ssr.TaskType].Timeout) * time.Millisecond,
			},
			pg.DB, log,
		)
		startWorker(zeebeClient, ssr.TaskType, cfg.Workers[ssr.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[isr.TaskType].Enabled {
		handler := isr.NewHandler(
			&isr.Config{
				Index:   cfg.Scoring.ScoreIndex,
				Timeout: time.Duration(cfg.Workers[isr.TaskType].Timeout) * time.Millisecond,
			},
			esClient.Client, log,
		)
		startWorker(zeebeClient, isr.TaskType, cfg.Workers[isr.TaskType], handler.Handle, zapLog)
	}

	// Notification
	if cfg.Workers[nr.TaskType].Enabled {
		handler, err := nr.NewHandler(
			&nr.Config{
				FromEmail:           cfg.Notifications.Email.FromEmail,
				EmailEnabled:        cfg.Notifications.Email.Enabled,
				SMSEnabled:          cfg.Notifications.SMS.Enabled,
				SMSRankingThreshold: cfg.Notifications.SMS.RankingThreshold,
				AWSRegion:           cfg.Notifications.AWS.Region,
				Timeout:             time.Duration(cfg.Workers[nr.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		if err != nil {
			zapLog.Fatal("failed to create notify-recruiter handler", zap.Error(err))
		}
		startWorker(zeebeClient, nr.TaskType, cfg.Workers[nr.TaskType], handler.Handle, zapLog)
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(handlerFunc).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/streadway/amqp"

	"github.com/muhammadolammi/resumeformatter/internal/agents"
	"github.com/muhammadolammi/resumeformatter/internal/config"
	"github.com/muhammadolammi/resumeformatter/internal/database"
	"github.com/muhammadolammi/resumeformatter/internal/orchestrator"
	"github.com/muhammadolammi/resumeformatter/internal/storage"
	"github.com/muhammadolammi/resumeformatter/internal/worker"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Format résumés queued on RabbitMQ",
	Long: `worker consumes job ids from the format_jobs queue, fetches the documents
from Cloudflare R2, runs the pipeline and uploads the result. Job status is
stored in Postgres and published to the job_updates exchange.`,
	Args: cobra.NoArgs,
	RunE: runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := setupLogger(cmd.ErrOrStderr(), false, debug)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	wcfg, err := config.LoadWorker()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", wcfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("error opening db: %w", err)
	}
	defer db.Close()

	store, err := storage.NewR2(ctx, wcfg.R2.AccountID, wcfg.R2.Bucket, wcfg.R2.AccessKey, wcfg.R2.SecretKey)
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(wcfg.RabbitMQURL)
	if err != nil {
		return fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}
	defer conn.Close()
	publisher, err := worker.NewAMQPPublisher(conn)
	if err != nil {
		return err
	}

	agentCfg, err := agents.NewGeminiConfig(ctx, cfg.APIKey, cfg.Model, cfg.Models, cfg.Search)
	if err != nil {
		return err
	}
	orch, err := orchestrator.New(agentCfg, orchestrator.Options{
		AppName:  cfg.AppName,
		UserID:   cfg.UserID,
		Parallel: cfg.Parallel,
		Logger:   logger,
		Observe:  orchestrator.LogProgress(logger),
	})
	if err != nil {
		return err
	}

	pool := &worker.Pool{
		URL:     wcfg.RabbitMQURL,
		Workers: wcfg.Workers,
		Processor: &worker.Processor{
			Store:     store,
			Jobs:      database.New(db),
			Publisher: publisher,
			Formatter: orch,
			Logger:    logger,
			Attempts:  3,
			Backoff:   500 * time.Millisecond,
		},
		Logger: logger,
	}

	logger.Info("starting consumer pool", "workers", wcfg.Workers, "queue", worker.JobsQueue)
	err = pool.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

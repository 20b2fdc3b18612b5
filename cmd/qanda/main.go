package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/qanda/modules/qa"
	"github.com/dmitrymomot/qanda/pkg/config"
	"github.com/dmitrymomot/qanda/pkg/httpserver"
	"github.com/dmitrymomot/qanda/pkg/logger"
	"github.com/dmitrymomot/qanda/pkg/questions"
)

func main() {
	if err := run(); err != nil {
		slog.Error("qanda stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(logger.RequestIDExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []questions.Option{
		questions.WithLatency(cfg.questionsLatency()),
		questions.WithLogger(log),
	}
	if cfg.QuestionsSeedFile != "" {
		seed, err := questions.LoadSeedFile(cfg.QuestionsSeedFile, time.Now())
		if err != nil {
			return err
		}
		opts = append(opts, questions.WithQuestions(seed))
		log.Info("questions seeded", slog.String("file", cfg.QuestionsSeedFile), logger.Count(len(seed)))
	}
	client := questions.New(opts...)

	svc := qa.NewService(cfg.QA, client, qa.WithLogger(log))
	go svc.Run(ctx)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, qa.Router(qa.RouterOptions{Service: svc, Logger: log}))
}

package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/felixgeelhaar/tempo/adapter/cli"
	"github.com/felixgeelhaar/tempo/internal/scheduling/application/commands"
	"github.com/felixgeelhaar/tempo/internal/scheduling/application/queries"
	"github.com/felixgeelhaar/tempo/internal/scheduling/application/services"
	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
	"github.com/felixgeelhaar/tempo/internal/scheduling/infrastructure/persistence"
	"github.com/felixgeelhaar/tempo/pkg/config"
	"github.com/felixgeelhaar/tempo/pkg/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger := observability.NewLogger(observability.DefaultLogConfig())
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      observability.LogFormat(cfg.LogFormat),
		Output:      os.Stderr,
		ServiceName: "tempo",
	})
	cli.SetLogger(logger)

	ctx := context.Background()

	store := domain.NewScheduleStore()

	var repo domain.BlockRepository
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		logger.Warn("cannot create data directory, running in-memory", "error", err)
	} else {
		db, err := sql.Open("sqlite", cfg.DatabasePath)
		if err != nil {
			logger.Warn("cannot open database, running in-memory", "error", err)
		} else {
			defer db.Close()

			sqliteRepo := persistence.NewSQLiteBlockRepository(db)
			if err := sqliteRepo.EnsureSchema(ctx); err != nil {
				logger.Error("failed to prepare database", "error", err)
				os.Exit(1)
			}
			blocks, err := sqliteRepo.LoadAll(ctx)
			if err != nil {
				logger.Error("failed to load schedule", "error", err)
				os.Exit(1)
			}
			if err := store.InsertAll(blocks); err != nil {
				logger.Error("failed to restore schedule", "error", err)
				os.Exit(1)
			}
			repo = sqliteRepo
		}
	}

	clock := services.SystemClock()
	metrics := observability.NoopMetrics{}

	finder := services.NewSlotFinder(store, nil, clock, logger)
	finder.SetHorizon(time.Duration(cfg.HorizonDays) * 24 * time.Hour)
	detector := services.NewConflictDetector(logger)

	cli.SetApp(&cli.App{
		Store: store,
		Repo:  repo,

		AutoScheduleTaskHandler: commands.NewAutoScheduleTaskHandler(store, finder, logger, metrics),
		ProtectFocusTimeHandler: commands.NewProtectFocusTimeHandler(store, clock, logger, metrics),
		ScheduleHabitHandler:    commands.NewScheduleHabitHandler(store, clock, logger, metrics),

		ScheduleEfficiencyHandler: queries.NewScheduleEfficiencyHandler(store, detector, clock),
		FindOptimalSlotHandler:    queries.NewFindOptimalSlotHandler(finder),

		Rescheduler: services.NewRescheduler(store, detector, logger),
	})
	cli.SetDefaults(cfg.FocusHoursPerDay, cfg.FocusPreferredTime, cfg.HabitFlexibilityScore)

	cli.Execute()
}

// Command seeder imports the verb, conjugation and sentence datasets from
// JSON files into PostgreSQL. It runs offline, not as part of the server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        read and validate datasets without writing to DB
//	--replace        truncate corpus tables first, all phases in one transaction
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/sanskrit-verbgame/internal/adapter/dataset"
	"github.com/heartmarshall/sanskrit-verbgame/internal/adapter/postgres"
	"github.com/heartmarshall/sanskrit-verbgame/internal/adapter/postgres/corpusrepo"
	"github.com/heartmarshall/sanskrit-verbgame/internal/app"
	"github.com/heartmarshall/sanskrit-verbgame/internal/app/seeder"
	"github.com/heartmarshall/sanskrit-verbgame/internal/config"
	"github.com/heartmarshall/sanskrit-verbgame/migrations"
)

// Compile-time interface assertions.
var (
	_ seeder.CorpusBulkRepo = (*corpusrepo.Repo)(nil)
	_ seeder.DatasetSource  = (*dataset.Loader)(nil)
	_ seeder.TxRunner       = (*postgres.TxManager)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "read datasets without writing to DB")
	replaceFlag := flag.Bool("replace", false, "truncate corpus tables before seeding")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *replaceFlag {
		seederCfg.Replace = true
	}

	var phases []string
	if *phaseFlag != "" {
		for _, ph := range strings.Split(*phaseFlag, ",") {
			phases = append(phases, strings.TrimSpace(ph))
		}
	}

	corpusCfg := appCfg.Corpus
	if seederCfg.DatasetDir != "" {
		corpusCfg.Dir = seederCfg.DatasetDir
	}
	src := dataset.NewLoader(logger, corpusCfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var (
		repo seeder.CorpusBulkRepo
		txm  seeder.TxRunner
	)
	if seederCfg.DryRun {
		repo = dryRunRepo{}
	} else {
		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, logger, pool, migrations.FS); err != nil {
			logger.Error("apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}

		repo = corpusrepo.New(pool)
		txm = postgres.NewTxManager(pool)
	}

	logger.Info("starting seeder",
		slog.String("version", app.BuildVersion()),
		slog.Bool("dry_run", seederCfg.DryRun),
		slog.Bool("replace", seederCfg.Replace),
		slog.Any("phases", phases),
	)

	pipeline := seeder.NewPipeline(logger, repo, src, txm, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}

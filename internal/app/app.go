package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/sanskrit-verbgame/internal/adapter/dataset"
	"github.com/heartmarshall/sanskrit-verbgame/internal/adapter/postgres"
	"github.com/heartmarshall/sanskrit-verbgame/internal/adapter/postgres/corpusrepo"
	"github.com/heartmarshall/sanskrit-verbgame/internal/config"
	"github.com/heartmarshall/sanskrit-verbgame/internal/corpus"
	"github.com/heartmarshall/sanskrit-verbgame/internal/service/quiz"
	"github.com/heartmarshall/sanskrit-verbgame/internal/transport/middleware"
	"github.com/heartmarshall/sanskrit-verbgame/internal/transport/rest"
	"github.com/heartmarshall/sanskrit-verbgame/migrations"
)

// Run is the application entry point. It loads configuration and the corpus,
// serves HTTP until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("server", rest.ServerName),
		slog.String("corpus_source", cfg.Corpus.Source),
		slog.String("log_level", cfg.Log.Level),
	)

	var pool *pgxpool.Pool
	if cfg.Corpus.UsesPostgres() {
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, logger, pool, migrations.FS); err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
		}
	}

	c, err := loadCorpus(ctx, logger, cfg.Corpus, pool)
	if err != nil {
		return err
	}
	if c.SentenceCount() == 0 {
		logger.Warn("no sentences loaded; /api/get-game will answer 404")
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	// A nil *pgxpool.Pool must not reach the handler as a non-nil interface.
	var health *rest.HealthHandler
	if pool != nil {
		health = rest.NewHealthHandler(c, pool, BuildVersion())
	} else {
		health = rest.NewHealthHandler(c, nil, BuildVersion())
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Log:       logger,
		Health:    health,
		Quiz:      rest.NewQuizHandler(logger, quiz.NewService(logger, c)),
		CORS:      cfg.CORS,
		Limiter:   limiter,
		RateLimit: cfg.Server.RateLimit,
	})

	return serve(ctx, logger, newHTTPServer(cfg.Server, handler), cfg.Server.ShutdownTimeout)
}

// loadCorpus builds the corpus from the configured source.
func loadCorpus(ctx context.Context, log *slog.Logger, cfg config.CorpusConfig, pool *pgxpool.Pool) (*corpus.Corpus, error) {
	if cfg.UsesPostgres() {
		if pool == nil {
			return nil, errors.New("corpus source is postgres but no database pool is configured")
		}
		c, err := corpusrepo.New(pool).Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load corpus from postgres: %w", err)
		}
		st := c.Stats()
		log.Info("corpus loaded",
			slog.String("source", config.SourcePostgres),
			slog.Int("verbs", st.Verbs),
			slog.Int("sentences", st.Sentences),
			slog.Int("paradigms", st.Paradigms),
			slog.Any("tenses", st.Tenses),
		)
		return c, nil
	}

	c, err := dataset.NewLoader(log, cfg).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus from files: %w", err)
	}
	return c, nil
}

func newHTTPServer(cfg config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, log *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down", slog.Duration("timeout", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		log.Info("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}

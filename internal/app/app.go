package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/riskibarqy/fkl-dashboard/external/sheets"
	"github.com/riskibarqy/fkl-dashboard/internal/config"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/selection"
	cachedrepo "github.com/riskibarqy/fkl-dashboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fkl-dashboard/internal/infrastructure/repository/csvdir"
	"github.com/riskibarqy/fkl-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fkl-dashboard/internal/infrastructure/repository/postgres"
	redisrepo "github.com/riskibarqy/fkl-dashboard/internal/infrastructure/repository/redis"
	"github.com/riskibarqy/fkl-dashboard/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/fkl-dashboard/internal/platform/cache"
	idgen "github.com/riskibarqy/fkl-dashboard/internal/platform/id"
	"github.com/riskibarqy/fkl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fkl-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/fkl-dashboard/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const sessionSweepInterval = time.Minute

// App holds the dashboard service and the resources opened to build it.
type App struct {
	Dashboard *usecase.DashboardService
	closers   []func() error
}

// New wires the configured record source and session store into a dashboard service.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{}
	source, err := a.openRecordSource(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	sessions, err := a.openSelectionStore(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Dashboard = usecase.NewDashboardService(source, sessions, logger)
	return a, nil
}

// NewRecordSource builds only the record source, for callers without sessions such as the CLI.
func NewRecordSource(ctx context.Context, cfg config.Config, logger *logging.Logger) (roundstat.Source, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{}
	source, err := a.openRecordSource(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, nil, err
	}
	return source, a.Close, nil
}

// Close releases resources in reverse opening order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func NewHTTPServer(cfg config.Config, a *App, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(a.Dashboard, logger)
	router := httpapi.NewRouter(handler, httpapi.SessionConfig{
		CookieName: cfg.SessionCookieName,
		Secure:     cfg.SessionCookieSecure,
		TTL:        cfg.SessionTTL,
		IDs:        idgen.NewRandomGenerator(),
	}, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

func (a *App) openRecordSource(ctx context.Context, cfg config.Config, logger *logging.Logger) (roundstat.Source, error) {
	var source roundstat.Source
	switch cfg.RecordSource {
	case config.SourceMemory, "":
		source = memory.NewRoundStatSource(memory.SeedRoundStats())
	case config.SourceSheets:
		client, err := newSheetsClient(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		source = client
	case config.SourcePostgres:
		db, err := postgres.Open(ctx, postgres.Options{
			URL:                   cfg.DBURL,
			DisablePreparedBinary: cfg.DBDisablePreparedBinary,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		source = postgres.NewRoundStatSource(db)
	case config.SourceCSV:
		info, err := os.Stat(cfg.CSVDir)
		if err != nil {
			return nil, fmt.Errorf("open csv dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("open csv dir: %s is not a directory", cfg.CSVDir)
		}
		source = csvdir.NewRoundStatSource(os.DirFS(cfg.CSVDir), cfg.CSVWorkers)
	default:
		return nil, fmt.Errorf("unsupported record source %q", cfg.RecordSource)
	}

	logger.Info("record source ready", "source", cfg.RecordSource, "cache_enabled", cfg.CacheEnabled, "cache_ttl", cfg.CacheTTL)
	if !cfg.CacheEnabled {
		return source, nil
	}
	return cachedrepo.NewRoundStatSource(source, basecache.NewStore[[]roundstat.TeamTable](cfg.CacheTTL)), nil
}

func newSheetsClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sheets.Client, error) {
	base := &http.Client{
		Timeout:   cfg.SheetsTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	// The token source outlives startup, so it must not inherit ctx cancellation.
	authorized, err := sheets.NewAuthorizedHTTPClient(context.WithoutCancel(ctx), cfg.SheetsCredentialsJSON, cfg.SheetsTokenURL, base)
	if err != nil {
		return nil, fmt.Errorf("sheets credentials: %w", err)
	}

	return sheets.NewClient(sheets.ClientConfig{
		HTTPClient:     authorized,
		BaseURL:        cfg.SheetsBaseURL,
		SpreadsheetID:  cfg.SheetsSpreadsheetID,
		Timeout:        cfg.SheetsTimeout,
		MaxConcurrency: cfg.SheetsMaxConcurrency,
		Retry: resilience.RetryPolicy{
			MaxRetries: cfg.SheetsMaxRetries,
			Backoff:    resilience.DefaultRetryPolicy().Backoff,
		},
		CircuitBreaker: resilience.BreakerConfig{
			Enabled:          cfg.SheetsCircuitEnabled,
			FailureThreshold: cfg.SheetsCircuitFailureCount,
			OpenTimeout:      cfg.SheetsCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SheetsCircuitHalfOpenMaxReq,
		},
		Logger: logger,
	})
}

func (a *App) openSelectionStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (selection.Store, error) {
	switch cfg.SessionStore {
	case config.SessionStoreMemory, "":
		store := memory.NewSelectionStore(cfg.SessionTTL)
		sweepCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		go store.RunSweeper(sweepCtx, sessionSweepInterval)
		a.closers = append(a.closers, func() error {
			cancel()
			return nil
		})
		logger.Info("session store ready", "store", config.SessionStoreMemory, "ttl", cfg.SessionTTL)
		return store, nil
	case config.SessionStoreRedis:
		client, err := redisrepo.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		logger.Info("session store ready", "store", config.SessionStoreRedis, "ttl", cfg.SessionTTL)
		return redisrepo.NewSelectionStore(client, cfg.SessionTTL, logger), nil
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.SessionStore)
	}
}

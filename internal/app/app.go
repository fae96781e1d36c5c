package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/repairshop-backend/internal/adapter/mail"
	"github.com/heartmarshall/repairshop-backend/internal/adapter/migrator"
	"github.com/heartmarshall/repairshop-backend/internal/config"
	"github.com/heartmarshall/repairshop-backend/internal/service/record"
	"github.com/heartmarshall/repairshop-backend/internal/service/report"
	"github.com/heartmarshall/repairshop-backend/internal/transport/middleware"
	"github.com/heartmarshall/repairshop-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// store, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database_driver", cfg.Database.Driver),
	)

	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.close()

	if cfg.Database.AutoMigrate {
		m, err := migrator.New(st.driver, st.sqlDB, logger)
		if err != nil {
			return fmt.Errorf("migrator: %w", err)
		}
		if err := m.Up(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	handler, err := newHandler(cfg, st, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// newHandler builds services, handlers and the middleware chain.
func newHandler(cfg *config.Config, st *store, logger *slog.Logger) (http.Handler, error) {
	loc, err := cfg.Shop.Location()
	if err != nil {
		return nil, fmt.Errorf("shop timezone: %w", err)
	}

	mailer, err := mail.New(cfg.Mail, logger)
	if err != nil {
		return nil, fmt.Errorf("mail: %w", err)
	}

	records := record.NewService(logger, st.clients, st.history, st.tx, loc)
	reports := report.NewService(logger, st.clients, st.history, mailer, report.Settings{
		ShopName: cfg.Shop.Name,
		Subject:  cfg.Shop.ReportSubject,
		Location: loc,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	mux := rest.NewRouter(rest.Handlers{
		Records: rest.NewRecordHandler(records, logger),
		Reports: rest.NewReportHandler(reports, logger),
		Health:  rest.NewHealthHandler(st.pinger, st.driver, cfg.Mail.Enabled(), Version),
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		metrics.Instrument(),
	)

	return chain(mux), nil
}

// serve runs srv until ctx is done, then shuts it down within the
// configured timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}

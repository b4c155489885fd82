package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/webhook-relay/audit"
	auditredis "github.com/marcelsud/webhook-relay/audit/redis"
	"github.com/marcelsud/webhook-relay/config"
	"github.com/marcelsud/webhook-relay/internal/http/chi"
	"github.com/marcelsud/webhook-relay/metrics"
	"github.com/marcelsud/webhook-relay/relay"
	"github.com/marcelsud/webhook-relay/routes"
	"github.com/rs/zerolog"
)

const TIMEOUT = 30 * time.Second

/* main wires the packages together: settings, route table, audit backend,
 * metrics, dispatcher and the two HTTP servers. Errors stop here.
 */

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	logger := chi.NewLogger("webhook-relay")
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	loader := routes.NewLoader()
	if err := loader.Load(cfg.ConfigFile); err != nil {
		return err
	}
	table := loader.Table()
	for _, route := range table.Shadowed() {
		logger.Warn().Str("route", route.Name).Str("path", route.Path).Msg("route is shadowed by an earlier route with the same path")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	auditLogger, closeAudit, err := newAuditLogger(cfg)
	if err != nil {
		return err
	}
	defer closeAudit(ctx)

	exporter, err := metrics.NewOTelExporter(table)
	if err != nil {
		return err
	}
	defer exporter.Shutdown(context.Background())

	service := relay.NewService(table, relay.NewHTTPForwarder(), auditLogger, exporter, logger)

	relaySrv := &http.Server{
		ReadTimeout: 30 * time.Second,
		Addr:        loader.Server().Addr(),
		Handler:     chi.RelayHandlers(ctx, service, logger, cfg.MountPath),
	}
	adminSrv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.AdminPort,
		Handler:      chi.AdminHandlers(ctx, table, exporter.ServeHTTP(), logger),
	}

	errShutdown := make(chan error, 2)
	go shutdown(relaySrv, ctx, errShutdown)
	go shutdown(adminSrv, ctx, errShutdown)

	errServe := make(chan error, 2)
	go serve(adminSrv, errServe)
	go serve(relaySrv, errServe)

	logger.Info().
		Str("addr", relaySrv.Addr).
		Str("admin_addr", adminSrv.Addr).
		Int("routes", table.Len()).
		Msg("listening")

	select {
	case err := <-errServe:
		stop()
		return err
	case <-ctx.Done():
	}

	for i := 0; i < 2; i++ {
		if err := <-errShutdown; err != nil {
			return err
		}
	}
	logger.Info().Msg("shutting down server")
	return nil
}

func newAuditLogger(cfg *config.Config) (relay.AuditLogger, func(context.Context) error, error) {
	if cfg.AuditBackend == config.AuditBackendRedis {
		l, err := auditredis.NewLogger(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return l, l.Close, nil
	}
	return audit.NewFileLogger(cfg.LogsDir), func(context.Context) error { return nil }, nil
}

func serve(server *http.Server, errServe chan error) {
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		errServe <- fmt.Errorf("serving %s: %w", server.Addr, err)
	}
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing closing the server %s", server.Addr)
	default:
		errShutdown <- fmt.Errorf("closing the server %s: %w", server.Addr, err)
	}
}

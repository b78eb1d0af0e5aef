package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	attendancehandler "roster/internal/attendance/handler"
	attendancemetrics "roster/internal/attendance/metrics"
	attendanceservice "roster/internal/attendance/service"
	attendancestore "roster/internal/attendance/store"
	dashboardhandler "roster/internal/dashboard/handler"
	dashboardservice "roster/internal/dashboard/service"
	enlistmenthandler "roster/internal/enlistment/handler"
	enlistmentmetrics "roster/internal/enlistment/metrics"
	enlistmentservice "roster/internal/enlistment/service"
	enlistmentstore "roster/internal/enlistment/store"
	"roster/internal/identity"
	"roster/internal/platform/config"
	"roster/internal/platform/httpserver"
	"roster/internal/platform/lock"
	"roster/internal/platform/metrics"
	"roster/internal/platform/postgres"
	"roster/internal/platform/redis"
	ratelimitmetrics "roster/internal/ratelimit/metrics"
	ratelimit "roster/internal/ratelimit/middleware"
	ratelimitmodels "roster/internal/ratelimit/models"
	ratelimitstore "roster/internal/ratelimit/store"
	recordmetrics "roster/internal/servicerecord/metrics"
	"roster/internal/servicerecord/publisher"
	servicerecord "roster/internal/servicerecord/service"
	recordstore "roster/internal/servicerecord/store"
	soldierhandler "roster/internal/soldier/handler"
	soldiermetrics "roster/internal/soldier/metrics"
	soldiermodels "roster/internal/soldier/models"
	soldierservice "roster/internal/soldier/service"
	soldierstore "roster/internal/soldier/store"
	httptransport "roster/internal/transport/http"
	"roster/pkg/domain"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  serveRun,
	}
}

func serveRun(cmd *cobra.Command, _ []string) error {
	cfg, log, err := commonRun()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	srv := httpserver.New(cfg.Server, a.router, log)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting http server", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	log.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// soldierStore is what the soldier backends provide to every module that reads
// or writes soldiers.
type soldierStore interface {
	soldierservice.Store
	Create(ctx context.Context, soldier *soldiermodels.Soldier) error
	FindByEnlistment(ctx context.Context, enlistmentID domain.EnlistmentID) (*soldiermodels.Soldier, error)
	DisplayNames(ctx context.Context, ids []domain.SoldierID) (map[domain.SoldierID]string, error)
	CountByStatus(ctx context.Context) (map[soldiermodels.Status]int, error)
}

type stores struct {
	soldiers    soldierStore
	records     servicerecord.Store
	enlistments enlistmentservice.Store
	attendance  attendanceservice.Store
}

type app struct {
	router  http.Handler
	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func buildApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	proxies, err := cfg.Server.ProxyPrefixes()
	if err != nil {
		return nil, err
	}
	a := &app{}
	checks := map[string]httptransport.HealthCheck{}

	st, db, err := openStores(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	if db != nil {
		a.closers = append(a.closers, func() { _ = db.Close() })
		checks["postgres"] = db.PingContext
	}

	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		a.close()
		return nil, err
	}
	var (
		locker  lock.Locker
		limiter ratelimit.Store
	)
	if rdb != nil {
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		checks["redis"] = rdb.Health
		locker = lock.NewRedis(rdb.Client)
		limiter = ratelimitstore.NewRedisStore(rdb.Client)
	} else {
		log.Warn("REDIS_URL not set; acceptance lock and rate limits are process local")
		locker = lock.NewMemory()
		limiter = ratelimitstore.NewInMemoryStore()
	}

	ledgerOpts := []servicerecord.Option{
		servicerecord.WithLogger(log),
		servicerecord.WithMetrics(recordmetrics.New()),
	}
	if len(cfg.Kafka.Brokers) > 0 {
		pub, err := publisher.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic, publisher.WithTimeout(cfg.Kafka.PublishTimeout))
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, pub.Close)
		checks["kafka"] = pub.Ping
		ledgerOpts = append(ledgerOpts, servicerecord.WithPublisher(pub))
		log.Info("publishing service records", "topic", cfg.Kafka.Topic)
	}
	ledger := servicerecord.New(st.records, ledgerOpts...)

	attendance := attendanceservice.New(st.attendance, st.soldiers,
		attendanceservice.WithLogger(log),
		attendanceservice.WithMetrics(attendancemetrics.New()),
	)
	soldiers := soldierservice.New(st.soldiers, ledger,
		soldierservice.WithLogger(log),
		soldierservice.WithMetrics(soldiermetrics.New()),
		soldierservice.WithAttendance(attendance),
	)
	enlistments := enlistmentservice.New(st.enlistments, st.soldiers, ledger,
		enlistmentservice.WithLogger(log),
		enlistmentservice.WithMetrics(enlistmentmetrics.New()),
		enlistmentservice.WithLocker(locker, cfg.Lock.AcceptTTL),
		enlistmentservice.WithPerformerNamer(soldiers),
	)
	dashboard := dashboardservice.New(st.soldiers, enlistments, ledger, attendance,
		dashboardservice.WithLogger(log),
	)

	enlistmentHandler := enlistmenthandler.New(enlistments, log)
	soldierHandler := soldierhandler.New(soldiers, log)
	a.router = httptransport.NewRouter(httptransport.Dependencies{
		Identity:       identity.NewJWTService(cfg.Identity.SigningKey, cfg.Identity.Issuer, cfg.Identity.Audience),
		Metrics:        metrics.New(),
		RequestTimeout: cfg.Server.RequestTimeout,
		TrustedProxies: proxies,
		Checks:         checks,
		PublicLimit: ratelimit.New(limiter, log, ratelimit.WithMetrics(ratelimitmetrics.New())).
			PerIP("enlistment_submit", ratelimitmodels.Policy{
				Limit:  cfg.RateLimit.SubmitLimit,
				Window: cfg.RateLimit.SubmitWindow,
			}),
		Public:      []httptransport.PublicRegistrar{enlistmentHandler},
		PublicReads: []httptransport.PublicRegistrar{soldierHandler},
		Protected: []httptransport.RouteRegistrar{
			soldierHandler,
			enlistmentHandler,
			attendancehandler.New(attendance, log),
			dashboardhandler.New(dashboard, log),
		},
	}, log)
	return a, nil
}

// openStores returns Postgres-backed stores when a database is configured and
// seeded in-memory stores otherwise.
func openStores(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (stores, *sql.DB, error) {
	if cfg.URL == "" {
		log.Warn("DATABASE_URL not set; using in-memory stores")
		soldiers := soldierstore.NewInMemoryStore()
		soldierstore.SeedReferenceData(soldiers)
		return stores{
			soldiers:    soldiers,
			records:     recordstore.NewInMemoryStore(),
			enlistments: enlistmentstore.NewInMemoryStore(),
			attendance:  attendancestore.NewInMemoryStore(),
		}, nil, nil
	}

	db, err := postgres.Open(ctx, cfg)
	if err != nil {
		return stores{}, nil, err
	}
	if cfg.AutoMigrate {
		n, err := postgres.Migrate(db)
		if err != nil {
			_ = db.Close()
			return stores{}, nil, err
		}
		log.Info("applied migrations", "count", n)
	}
	return stores{
		soldiers:    soldierstore.NewPostgres(db),
		records:     recordstore.NewPostgres(db),
		enlistments: enlistmentstore.NewPostgres(db),
		attendance:  attendancestore.NewPostgres(db),
	}, db, nil
}

package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"aquadrop/internal/config"
	"aquadrop/internal/http/handlers"
	"aquadrop/internal/http/middleware/ratelimit"
	"aquadrop/internal/http/pprofserver"
	"aquadrop/internal/http/router"
	"aquadrop/internal/logx"
	"aquadrop/internal/notify"
	"aquadrop/internal/repository"
	"aquadrop/internal/service/allocation"
	"aquadrop/internal/service/orders"
	"aquadrop/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
	worker    bool
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// ForWorker switches the builder to the Kafka worker wiring.
func (b *ContainerBuilder) ForWorker() *ContainerBuilder {
	b.worker = true
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if b.worker {
		if err := registerWorker(container); err != nil {
			return nil, fmt.Errorf("worker: %w", err)
		}
		return container, nil
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the Kafka worker container.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().ForWorker().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		provideMetrics,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

type engineIn struct {
	dig.In

	Vendors   *repository.VendorRepo
	Orders    *repository.OrderRepo
	Notifier  allocation.Notifier
	Estimator allocation.Estimator
	Cfg       *config.Config
	Logger    logx.Logger

	Assignments    prometheus.Counter     `name:"allocation_assignments_total"`
	Failures       *prometheus.CounterVec `name:"allocation_failures_total"`
	NotifyFailures prometheus.Counter     `name:"allocation_notify_failures_total"`
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewVendorRepo,
		repository.NewOrderRepo,
		func(cfg *config.Config) allocation.Estimator {
			return allocation.NewEstimator(cfg.Allocation.SpeedKmh, cfg.Allocation.PrepBuffer)
		},
		func(cfg *config.Config, logger logx.Logger) (allocation.Notifier, error) {
			n, err := notify.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.NotifyTopic, logger)
			if err != nil {
				return nil, err
			}
			if n == nil {
				logger.Warn("kafka notifier disabled: brokers not configured")
				return notify.Nop{}, nil
			}
			return n, nil
		},
		func(in engineIn) *allocation.Engine {
			return allocation.NewEngine(
				in.Vendors,
				in.Orders,
				in.Notifier,
				in.Estimator,
				allocation.Config{
					DefaultRadiusKm:  in.Cfg.Allocation.DefaultRadiusKm,
					OperationTimeout: in.Cfg.Allocation.OperationTimeout,
				},
				allocation.Metrics{
					Assignments:        in.Assignments,
					AllocationFailures: in.Failures,
					NotifyFailures:     in.NotifyFailures,
				},
				in.Logger,
			)
		},
	)
}

type httpServersOut struct {
	dig.Out

	Pprof *http.Server `name:"pprof_server"`
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	pprofProvider := func(cfg *config.Config) httpServersOut {
		if !cfg.Pprof.Enabled {
			return httpServersOut{}
		}
		return httpServersOut{
			Pprof: &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Pprof.Port),
				Handler:           pprofserver.Handler(pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass}),
				ReadHeaderTimeout: 5 * time.Second,
			},
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewAllocationUsecase,
		handlers.NewAllocationHandler,
		handlers.NewVendorHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		func(
			logger logx.Logger,
			base *handlers.Handlers,
			alloc *handlers.AllocationHandler,
			vendor *handlers.VendorHandler,
			rl *ratelimit.Middleware,
		) http.Handler {
			return router.New(logger, base, alloc, vendor, rl)
		},
		serverProvider,
		pprofProvider,
	)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(engine *allocation.Engine, logger logx.Logger) *orders.Processor {
			return orders.NewProcessor(engine, logger)
		},
		func(cfg *config.Config, logger logx.Logger, p *orders.Processor) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.OrdersTopic, p.Handle)
		},
	)
}

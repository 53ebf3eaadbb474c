package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/docgen"
	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	export "go.opentelemetry.io/otel/sdk/export/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregator/histogram"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	selector "go.opentelemetry.io/otel/sdk/metric/selector/simple"

	handler "github.com/ncnews/backend/internal/handler/v1"
	"github.com/ncnews/backend/internal/service"
	"github.com/ncnews/backend/internal/worker"
	"github.com/ncnews/backend/pkg/envutils"
	"github.com/ncnews/backend/pkg/httputils"
	"github.com/ncnews/backend/pkg/natsinfo"
)

const ServiceName = "ncnews"

type DatabaseConfig struct {
	Username string
	Password string
	Database string
	Host     string
	Port     string
	Driver   string
}

func (dconf *DatabaseConfig) GetURI() string {
	return fmt.Sprintf("%s://%s:%s@%s:%s/%s",
		dconf.Driver,
		dconf.Username,
		dconf.Password,
		dconf.Host,
		dconf.Port,
		dconf.Database,
	)
}

func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Driver:   "postgres",
		Username: envutils.Env("POSTGRES_USERNAME", "admin"),
		Password: envutils.Env("POSTGRES_PASSWORD", "admin"),
		Host:     envutils.Env("POSTGRES_HOST", "postgres"),
		Port:     envutils.Env("POSTGRES_PORT", "5432"),
		Database: envutils.Env("POSTGRES_DATABASE", "postgres"),
	}
}

type NewDatabaseConnectionParams struct {
	fx.In
	Lifecycle fx.Lifecycle

	Config *DatabaseConfig
}

func NewDatabaseConnection(params NewDatabaseConnectionParams) (*sql.DB, error) {
	conn, err := sql.Open(params.Config.Driver, params.Config.GetURI()+"?sslmode=disable")
	if err != nil {
		return nil, err
	}
	params.Lifecycle.Append(fx.StopHook(conn.Close))
	return conn, nil
}

type HTTPConfig struct {
	Addr        string
	DiagAddr    string
	PrintRoutes bool
}

func NewHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Addr:        envutils.Env("BACKEND_ADDR", ":9090"),
		DiagAddr:    envutils.Env("BACKEND_DIAG_ADDR", ":9999"),
		PrintRoutes: envutils.EnvBool("BACKEND_PRINT_ROUTES", false),
	}
}

func NewLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

type Metrics struct {
	Exporter          *prometheus.Exporter
	requestsCompleted metric.BoundInt64Counter
}

// CountCompleted counts every finished request, exported on the diag
// listener under /metrics.
func (m *Metrics) CountCompleted(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		m.requestsCompleted.Add(r.Context(), 1)
	})
}

func NewMetrics() (*Metrics, error) {
	config := prometheus.Config{}
	c := controller.New(
		processor.New(
			selector.NewWithHistogramDistribution(
				histogram.WithExplicitBoundaries(config.DefaultHistogramBoundaries),
			),
			export.CumulativeExportKindSelector(),
			processor.WithMemory(true),
		),
	)
	exporter, err := prometheus.New(config, c)
	if err != nil {
		return nil, err
	}
	global.SetMeterProvider(exporter.MeterProvider())

	meter := global.Meter(ServiceName)
	requestsCompleted := metric.Must(meter).NewInt64Counter(
		"http/server/completed_count",
		metric.WithDescription("Count of completed requests"),
	).Bind(attribute.String("service", ServiceName))

	return &Metrics{
		Exporter:          exporter,
		requestsCompleted: requestsCompleted,
	}, nil
}

type StartHTTPServerParams struct {
	fx.In
	Lifecycle fx.Lifecycle

	Config   *HTTPConfig
	Logger   *zap.SugaredLogger
	Metrics  *Metrics
	Handlers []httputils.Handler `group:"routes"`
}

func StartHTTPServer(params StartHTTPServerParams) {
	router := httputils.NewRouter(httputils.NewRouterParams{
		Logger:      params.Logger,
		Middlewares: []func(http.Handler) http.Handler{params.Metrics.CountCompleted},
		Handlers:    params.Handlers,
	})

	if params.Config.PrintRoutes {
		fmt.Println(docgen.MarkdownRoutesDoc(router, docgen.MarkdownOpts{
			ProjectPath: "github.com/ncnews/backend",
			Intro:       "NC News API routes.",
		}))
		os.Exit(0)
	}

	diagRouter := chi.NewRouter()
	diagRouter.Get("/metrics", params.Metrics.Exporter.ServeHTTP)

	server := &http.Server{Addr: params.Config.Addr, Handler: router}
	diagServer := &http.Server{Addr: params.Config.DiagAddr, Handler: diagRouter}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					params.Logger.Errorw("http server stopped", "err", err)
				}
			}()
			go func() {
				if err := diagServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					params.Logger.Errorw("diag server stopped", "err", err)
				}
			}()
			params.Logger.Infow("listening", "addr", params.Config.Addr, "diag_addr", params.Config.DiagAddr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = diagServer.Shutdown(ctx)
			return server.Shutdown(ctx)
		},
	})
}

func main() {
	fx.New(
		fx.Provide(
			natsinfo.NewNatsConfig,
			natsinfo.NewNatsConnection,

			NewDatabaseConfig,
			NewDatabaseConnection,
			NewHTTPConfig,
			NewLogger,
			NewMetrics,

			service.NewArticleService,
			service.NewCommentService,
			service.NewTopicService,
			service.NewUserService,

			httputils.AsHandler(`group:"routes"`, handler.NewArticleHandler),
			httputils.AsHandler(`group:"routes"`, handler.NewCommentHandler),
			httputils.AsHandler(`group:"routes"`, handler.NewTopicHandler),
			httputils.AsHandler(`group:"routes"`, handler.NewUserHandler),
			httputils.AsHandler(`group:"routes"`, handler.NewEndpointsHandler),
		),
		fx.Invoke(
			StartHTTPServer,
			worker.StartArticleConsumerWorker,
		),
	).Run()
}

//
// microblog
// =========
// A small HTTP REST service exposing CRUD over users and their
// articles, backed by process-local in-memory storage. All state is
// lost on restart.
//
// Boot the server:
// ----------------
// $ go run main.go
//
// Client requests:
// ----------------
// $ curl -X POST -d '{"name":"Alice","email":"alice@example.com"}' http://localhost:3333/users
// {"id":1,"name":"Alice","email":"alice@example.com"}
//
// $ curl -X POST -d '{"user_id":1,"title":"Hi","content":"sup","tags":"go,chi"}' http://localhost:3333/articles
// {"id":1,"user_id":1,"title":"Hi","content":"sup","tags":["go","chi"],"created_at":"2021-06-20 14:02:05"}
//
// $ curl 'http://localhost:3333/articles?tag=go&date_after=2021-01-01'
// [{"id":1,...}]
//
// $ curl -X DELETE http://localhost:3333/users/1
// (204, the user's articles are removed as well)
//
// Passing -routes generates markdown docs for the router.
//
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/docgen"
	"github.com/go-chi/render"
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

	"github.com/mshv/microblog/internal/article"
	appconfig "github.com/mshv/microblog/internal/config"
	"github.com/mshv/microblog/internal/store"
	"github.com/mshv/microblog/internal/user"
)

const ServiceName = "microblog"

type CtxKey int8

const (
	CtxKeyLogger CtxKey = iota
)

type App struct {
	sugarLogger *zap.SugaredLogger
	config      *appconfig.Config
	store       *store.Store
}

// nolint
func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()

	cfg, err := appconfig.Load()
	if err != nil {
		sugar.Panicf("failed to load config %v", err)
	}

	// nolint
	var (
		routes   = flag.Bool("routes", false, "Generate router documentation")
		addr     = flag.String("addr", cfg.Server.Addr, "application port")
		diagPort = flag.String("diag_addr", cfg.Server.DiagAddr, "diag port")
	)

	flag.Parse()

	a := App{
		sugarLogger: sugar,
		config:      cfg,
		store:       store.New(),
	}

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
		a.sugarLogger.Panicf("failed to initialize prometheus exporter %v", err)
	}
	global.SetMeterProvider(exporter.MeterProvider())

	meter := global.Meter(ServiceName)
	labels := []attribute.KeyValue{
		attribute.String("status", "200")}
	ClientCompletedCount := metric.Must(meter).NewInt64Counter(
		"http/client/completed_count",
		metric.WithDescription("Count of completed requests, by HTTP method and response status"),
	).Bind(labels...)
	defer ClientCompletedCount.Unbind()

	r := chi.NewRouter()

	diagRouter := chi.NewRouter()
	diagRouter.Get("/metrics", exporter.ServeHTTP)

	r.Use(middleware.RequestID)
	r.Use(a.Logger)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("root."))
		if err != nil {
			sugar.Errorw(err.Error())
		}
	})

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		logger := r.Context().Value(CtxKeyLogger).(*zap.SugaredLogger)
		logger.Infow("ping with middle")
		ClientCompletedCount.Add(r.Context(), 1)
		_, err := w.Write([]byte("pong"))
		if err != nil {
			sugar.Errorw(err.Error())
		}
	})

	userResource := &user.Resource{Store: a.store, Log: sugar}
	articleResource := &article.Resource{Store: a.store, Log: sugar}

	r.Mount("/users", userResource.Routes())
	r.Mount("/articles", articleResource.Routes())

	// Passing -routes to the program will generate docs for the above
	// router definition.
	if *routes {
		// nolint
		fmt.Println(docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
			ProjectPath: "github.com/mshv/microblog",
			Intro:       "microblog generated docs.",
		}))

		return
	}

	go func() {
		err = http.ListenAndServe(*addr, r)
		if err != nil {
			a.sugarLogger.Errorw(err.Error())
		}
	}()

	err = http.ListenAndServe(*diagPort, diagRouter)
	if err != nil {
		a.sugarLogger.Errorw(err.Error())
	}
}

func (a *App) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), CtxKeyLogger, a.sugarLogger)))
	})
}

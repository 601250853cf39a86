package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashbook-server/internal/auth"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/business"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/cashbook"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/lookup"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/member"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/report"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/status"
	"github.com/carson-networks/cashbook-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/metrics"
	"github.com/carson-networks/cashbook-server/internal/service"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	Storage        pinger
	Service        *service.Service
	Verifier       *auth.Verifier
	AllowedOrigins []string
}

// Router builds the HTTP surface. Everything registered through huma requires a bearer
// token; /status, /metrics and the OpenAPI documents do not.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	statusHandler := status.NewHandler(r.Storage)
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	apiMetrics := metrics.New()
	router.Handle("/metrics", apiMetrics.Handler())

	config := huma.DefaultConfig("Cashbook API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}
	config.Security = []map[string][]string{{"bearer": {}}}

	api := humachi.New(router, config)
	api.UseMiddleware(
		logging.Middleware(r.Logger),
		apiMetrics.Middleware,
		auth.Middleware(api, r.Verifier),
	)

	svc := r.Service
	business.NewHandler(svc.Business).Register(api)
	cashbook.NewHandler(svc.Cashbook).Register(api)
	member.NewHandler(svc.Member).Register(api)
	lookup.NewCategoryHandler(svc.Category).Register(api)
	lookup.NewPartyHandler(svc.Party).Register(api)
	lookup.NewPaymentModeHandler(svc.PaymentMode).Register(api)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewManageTransactionHandler(svc.Transaction).Register(api)
	transaction.NewSummaryHandler(svc.Transaction).Register(api)
	report.NewHandler(svc.Report).Register(api)

	return router
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// Package demo serves a small REST API over the DashX SDK, used to try the
// SDK against a real workspace from a browser or curl.
package demo

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// NewHandler returns the demo routes over dx. Metrics are registered with
// reg and exposed on /metrics through gatherer.
func NewHandler(dx DashX, reg prometheus.Registerer, gatherer prometheus.Gatherer) http.Handler {
	h := &handlers{dx: dx}
	m := NewMetrics(reg)

	r := mux.NewRouter()
	r.Use(m.middleware)
	r.NotFoundHandler = m.middleware(http.HandlerFunc(notFound))
	r.MethodNotAllowedHandler = m.middleware(http.HandlerFunc(methodNotAllowed))

	r.HandleFunc("/welcome", h.welcome).Methods(http.MethodGet)
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.HandleFunc("/identify", h.identify).Methods(http.MethodGet)
	r.HandleFunc("/track", h.track).Methods(http.MethodGet)
	r.HandleFunc("/track-with-data", h.trackWithData).Methods(http.MethodGet)
	r.HandleFunc("/get-asset", h.getAsset).Methods(http.MethodGet)
	r.HandleFunc("/list-assets", h.listAssets).Methods(http.MethodGet)
	r.HandleFunc("/list-assets-filtered", h.listAssetsFiltered).Methods(http.MethodGet)
	r.HandleFunc("/search-records", h.searchRecords).Methods(http.MethodGet)
	r.HandleFunc("/create-issue", h.createIssue).Methods(http.MethodGet)
	r.HandleFunc("/upsert-issue", h.upsertIssue).Methods(http.MethodGet)
	r.HandleFunc("/send-whatsapp", h.sendWhatsApp).Methods(http.MethodGet)
	r.HandleFunc("/send-email", h.sendEmail).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(r)
}

// Server runs the demo API until its context is canceled.
type Server struct {
	Addr    string
	Handler http.Handler
}

// Run listens on s.Addr and shuts down gracefully when ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info("DashX demo listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		zap.L().Info("shutting down demo server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

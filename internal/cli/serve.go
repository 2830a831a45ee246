package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hydrokit/streamnet/pkg/connectivity"
	"github.com/hydrokit/streamnet/pkg/errors"
	"github.com/hydrokit/streamnet/pkg/source"
)

// newServeCmd creates the serve command exposing the transform over HTTP.
// One request carries one full network and yields one connectivity table;
// there is no shared state across requests.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the connectivity transform as an HTTP API",
		Long: `Serve the connectivity transform as an HTTP API.

Endpoints:
  POST /v1/connectivity  body: {"reaches": [{"id": 2, "downstream_id": 1}, ...],
                                "max_upstreams": 6}
                         response: the connectivity table as text/csv
  GET  /healthz          liveness probe

Validation failures return 400, fan-in overflows 422, both as JSON with a
machine-readable error code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// runServe starts the HTTP server and shuts it down when ctx is cancelled.
func runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

// newRouter builds the chi router with request-ID logging middleware.
func newRouter(logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Post("/v1/connectivity", handleConnectivity)

	return r
}

// requestLogger tags each request with a UUID and logs method, path,
// and duration on completion.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).Round(time.Millisecond))
		})
	}
}

// connectivityRequest is the POST /v1/connectivity body.
type connectivityRequest struct {
	Reaches      []source.JSONReach `json:"reaches"`
	MaxUpstreams int                `json:"max_upstreams"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// handleConnectivity builds a connectivity table for the posted network and
// streams it back as CSV.
func handleConnectivity(w http.ResponseWriter, r *http.Request) {
	var req connectivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	if err := connectivity.ValidateMaxUpstreams(req.MaxUpstreams); err != nil {
		writeError(w, err)
		return
	}

	net, err := source.FromJSONReaches(req.Reaches)
	if err != nil {
		writeError(w, err)
		return
	}

	table, err := connectivity.Build(net, connectivity.Options{MaxUpstreams: req.MaxUpstreams})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	table.WriteCSV(w)
}

// writeError maps structured error codes to HTTP statuses and writes the
// JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidReachID,
		errors.ErrCodeInvalidSchema, errors.ErrCodeInvalidWidth,
		errors.ErrCodeDuplicateReach:
		status = http.StatusBadRequest
	case errors.ErrCodeFanInOverflow:
		status = http.StatusUnprocessableEntity
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{
		Code:  string(errors.GetCode(err)),
		Error: errors.UserMessage(err),
	})
}

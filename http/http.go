// Package http serves the MaziShark API: a local development server and the
// serverless handler share the same application routes. The local server does
// not reproduce the platform's serverless execution semantics, only the
// request/response contract.
package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mazishark/mazishark/config"
	"github.com/mazishark/mazishark/constants"
	"github.com/mazishark/mazishark/core"
	"github.com/mazishark/mazishark/telemetry"
	"github.com/mazishark/mazishark/utils"
)

// StartServer runs the local HTTP server on cfg.Addr(). Blocks until the
// listener fails.
func StartServer(cfg *config.Config) error {
	if cfg == nil {
		cfg = &config.Config{}
	}

	mux := http.NewServeMux()
	core.NewApp(cfg).RegisterRoutes(mux)
	mux.Handle("/metrics", telemetry.MetricsHandler())

	handler := requestIDMiddleware(mux)
	handler = corsMiddleware(newCORSPolicy(cfg.Origins()), handler)
	handler = telemetry.WrapHandler("mazishark", handler)

	addr := cfg.Addr()
	utils.Info("serving MaziShark API on %s", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 30 * time.Second,
	}
	return server.ListenAndServe()
}

// requestIDMiddleware tags each request with an ID for log correlation and
// echoes it back to the caller.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(constants.HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(constants.HeaderRequestID, reqID)
		ctx := utils.WithRequestID(r.Context(), reqID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		utils.InfoCtx(ctx, "request served",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}

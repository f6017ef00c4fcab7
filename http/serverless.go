package http

import (
	"net/http"
	"sync"

	"github.com/mazishark/mazishark/config"
	"github.com/mazishark/mazishark/core"
	"github.com/mazishark/mazishark/utils"
)

var (
	initServerless sync.Once
	initErr        error
	serverlessMux  *http.ServeMux
	serverlessCORS *corsPolicy
	muxMutex       sync.RWMutex
)

// ServerlessHandler adapts the application to the platform's per-request
// invocation model. Initialization runs once per cold start; if it fails,
// every invocation on this instance returns 500 until a redeploy fixes the
// configuration. The data asset is NOT loaded here — it loads lazily on the
// first request that needs it (see core.App.Grid).
func ServerlessHandler(w http.ResponseWriter, r *http.Request) {
	initServerless.Do(func() {
		var cfg *config.Config
		cfg, initErr = config.FromEnv()
		if initErr != nil {
			utils.Error("serverless init failed: %v", initErr)
			return
		}

		mux := http.NewServeMux()
		core.NewApp(cfg).RegisterRoutes(mux)

		muxMutex.Lock()
		serverlessMux = mux
		serverlessCORS = newCORSPolicy(cfg.Origins())
		muxMutex.Unlock()
	})

	muxMutex.RLock()
	mux := serverlessMux
	policy := serverlessCORS
	muxMutex.RUnlock()

	if policy != nil && policy.apply(w, r) {
		return
	}

	if initErr != nil || mux == nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	mux.ServeHTTP(w, r)
}

// ResetServerless resets the cold-start state (for testing).
func ResetServerless() {
	muxMutex.Lock()
	defer muxMutex.Unlock()

	initServerless = sync.Once{}
	initErr = nil
	serverlessMux = nil
	serverlessCORS = nil
}

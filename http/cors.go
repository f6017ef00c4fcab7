package http

import (
	"net/http"

	"github.com/mazishark/mazishark/constants"
)

// corsPolicy applies the CORS_ALLOW_ORIGINS allowlist. "*" anywhere in the
// list allows every origin.
type corsPolicy struct {
	origins  []string
	allowAll bool
}

func newCORSPolicy(origins []string) *corsPolicy {
	p := &corsPolicy{origins: origins}
	for _, o := range origins {
		if o == "*" {
			p.allowAll = true
			break
		}
	}
	return p
}

// apply sets CORS headers for allowed origins and short-circuits OPTIONS
// preflights. Returns true when the request is fully handled.
func (p *corsPolicy) apply(w http.ResponseWriter, r *http.Request) bool {
	origin := r.Header.Get(constants.HeaderOrigin)
	switch {
	case p.allowAll:
		w.Header().Set(constants.HeaderAllowOrigin, "*")
	case origin != "" && p.allowed(origin):
		w.Header().Set(constants.HeaderAllowOrigin, origin)
		w.Header().Set(constants.HeaderAllowCredentials, "true")
		w.Header().Add(constants.HeaderVary, constants.HeaderOrigin)
	}
	if w.Header().Get(constants.HeaderAllowOrigin) != "" {
		w.Header().Set(constants.HeaderAllowMethods, constants.CORSAllowMethods)
		w.Header().Set(constants.HeaderAllowHeaders, constants.CORSAllowHeaders)
	}
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func (p *corsPolicy) allowed(origin string) bool {
	for _, o := range p.origins {
		if o == origin {
			return true
		}
	}
	return false
}

// corsMiddleware wraps a handler with the policy.
func corsMiddleware(p *corsPolicy, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p.apply(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

package handler

import (
	"net/http"

	mazihttp "github.com/mazishark/mazishark/http"
)

// Handler is the entry point for Vercel serverless functions.
// It delegates to the integrated ServerlessHandler.
func Handler(w http.ResponseWriter, r *http.Request) {
	mazihttp.ServerlessHandler(w, r)
}

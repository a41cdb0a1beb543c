// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/aura-portal/internal/logger"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with a method the portal does not serve answers
// 404, the same as an unknown path, so form endpoints are not advertised
// through 405 responses.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		if router.Match(rctx, r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("uri", r.URL.Path).
			Msg("method not served on this path")
		http.NotFound(w, r)
	}
}

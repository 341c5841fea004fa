// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A request whose path matches a registered pattern but whose method is not
// handled there is answered with 404 Not Found instead of chi's 405, so the
// front end sees the same answer as for an unknown path. Only exact pattern
// matches are considered.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		http.NotFound(w, r)
	}
}

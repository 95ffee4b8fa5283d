// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ianbriton/blogapi/internal/platform/sec"
)

// Route declares an endpoint together with the roles allowed to call it.
//
// A route is guarded unless Public is set: with no Roles it only needs an
// authenticated caller, otherwise the caller must hold one of Roles.
type Route struct {
	Method  string
	Pattern string
	Roles   []sec.Role
	Public  bool
	Handler http.HandlerFunc
}

// Mount registers routes on router, wrapping each guarded one in [RequireRole].
func Mount(router chi.Router, routes []Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler
		if !route.Public {
			handler = RequireRole(route.Roles...)(handler)
		}
		router.Method(route.Method, route.Pattern, handler)
	}
}

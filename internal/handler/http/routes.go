// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-keeper-client/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the callback listener. Anything but
// GET /captcha-callback answers 404, whatever the method.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, traceRequests(h.logger), accessLog)

	router.Get(service.CaptchaCallbackPath, h.captchaCallback)

	router.NotFound(http.NotFound)
	router.MethodNotAllowed(http.NotFound)

	return router
}

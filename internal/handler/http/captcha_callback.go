// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

const (
	callbackPageSolved    = "Капча пройдена. Вернитесь в терминал."
	callbackPageMissing   = "Токен капчи не получен. Вернитесь в терминал и попробуйте ещё раз."
	callbackPageCancelled = "Проверка отменена. Вернитесь в терминал."
)

// captchaCallback accepts the redirect of the captcha connector page:
//
//	GET /captcha-callback?token=<token>
//
// An empty token reports a missing token; "error=cancelled" reports that the
// user gave up on the challenge.
func (h *Handler) captchaCallback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	q := r.URL.Query()

	var (
		result models.CaptchaTokenResult
		page   string
		status int
	)
	switch token := strings.TrimSpace(q.Get("token")); {
	case token != "":
		result = models.CaptchaTokenResult{Status: models.CaptchaTokenSuccess, Token: token}
		page, status = callbackPageSolved, http.StatusOK
	case q.Get("error") == "cancelled":
		result = models.CaptchaTokenResult{Status: models.CaptchaTokenCancelled}
		page, status = callbackPageCancelled, http.StatusOK
	default:
		result = models.CaptchaTokenResult{Status: models.CaptchaTokenMissing}
		page, status = callbackPageMissing, http.StatusBadRequest
	}

	h.captcha.SetCaptchaToken(result)
	log.Info().
		Str("func", "Handler.captchaCallback").
		Int("captcha_status", int(result.Status)).
		Msg("captcha result delivered")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(page)); err != nil {
		log.Warn().Err(err).
			Str("func", "Handler.captchaCallback").
			Msg("failed to write callback page")
	}
}

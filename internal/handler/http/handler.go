package http

import (
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

// captchaSink receives captcha results. service.AuthService implements it.
type captchaSink interface {
	SetCaptchaToken(result models.CaptchaTokenResult)
}

// Handler serves the captcha callback.
type Handler struct {
	captcha captchaSink
	logger  *logger.Logger
}

func NewHandler(captcha captchaSink, log *logger.Logger) *Handler {
	return &Handler{captcha: captcha, logger: log}
}

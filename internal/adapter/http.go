// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-keeper-client/internal/config"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/utils"
	"github.com/MKhiriev/go-pass-keeper-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	clientID   = "cli"
	deviceType = "8" // linux desktop
	deviceName = "go-pass-keeper-cli"
	loginScope = "api offline_access"
)

type httpServerAdapter struct {
	api      *utils.HTTPClient
	identity *utils.HTTPClient

	deviceID string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the API and identity base URLs from
// adapterCfg and configures one HTTP client per host with the request
// timeout. deviceID identifies this installation to the identity server.
//
// Returns an error if an address is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, deviceID string, logger *logger.Logger) (ServerAdapter, error) {
	apiURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	identityAddress := adapterCfg.IdentityAddress
	if identityAddress == "" {
		identityAddress = adapterCfg.HTTPAddress
	}
	identityURL, err := normalizeBaseURL(identityAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter identity address: %w", err)
	}

	api := utils.NewHTTPClient()
	api.SetBaseURL(apiURL).SetTimeout(adapterCfg.RequestTimeout)

	identity := utils.NewHTTPClient()
	identity.SetBaseURL(identityURL).SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{
		api:      api,
		identity: identity,
		deviceID: deviceID,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. The request is sent as
// application/x-www-form-urlencoded to /connect/token on the identity host.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	form := map[string]string{
		"grant_type":       "password",
		"username":         req.Email,
		"password":         req.Password,
		"scope":            loginScope,
		"client_id":        clientID,
		"deviceType":       deviceType,
		"deviceIdentifier": h.deviceID,
		"deviceName":       deviceName,
	}
	if req.CaptchaToken != "" {
		form["captchaResponse"] = req.CaptchaToken
	}
	if req.TwoFactor != nil {
		form["twoFactorToken"] = req.TwoFactor.Code
		form["twoFactorProvider"] = strconv.Itoa(int(req.TwoFactor.Method))
		form["twoFactorRemember"] = boolToFormValue(req.TwoFactor.Remember)
	}

	resp, err := h.identity.R().
		SetContext(ctx).
		SetFormData(form).
		Post("/connect/token")
	if err != nil {
		return models.LoginResponse{}, mapTransportError("login request", err)
	}

	var out models.LoginResponse
	switch resp.StatusCode() {
	case http.StatusOK:
		if err = json.Unmarshal(resp.Body(), &out); err != nil {
			return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
		}
		h.SetToken(out.AccessToken)
		return out, nil
	case http.StatusBadRequest:
		if err = json.Unmarshal(resp.Body(), &out); err != nil {
			return models.LoginResponse{}, mapHTTPError(resp)
		}
		if out.CaptchaSiteKey != "" || len(out.TwoFactorProviders) > 0 {
			h.logger.Debug().
				Str("func", "httpServerAdapter.Login").
				Bool("captcha", out.CaptchaSiteKey != "").
				Int("two_factor_providers", len(out.TwoFactorProviders)).
				Msg("identity server returned a challenge")
			return out, nil
		}
		return out, fmt.Errorf("%w: %s", ErrInvalidCredentials, errorMessage(resp.Body()))
	default:
		return models.LoginResponse{}, mapHTTPError(resp)
	}
}

// ResendVerificationEmail implements [ServerAdapter].
func (h *httpServerAdapter) ResendVerificationEmail(ctx context.Context, req models.ResendEmailRequest) error {
	if req.DeviceIdentifier == "" {
		req.DeviceIdentifier = h.deviceID
	}

	resp, err := h.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/two-factor/send-email-login")
	if err != nil {
		return mapTransportError("resend email request", err)
	}

	return mapHTTPError(resp)
}

// Sync implements [ServerAdapter].
func (h *httpServerAdapter) Sync(ctx context.Context) (models.SyncResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("excludeDomains", "true").
		Get("/sync")
	if err != nil {
		return models.SyncResponse{}, mapTransportError("sync request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var out models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SyncResponse{}, fmt.Errorf("decode sync response: %w", err)
	}
	return out, nil
}

// ShareCipher implements [ServerAdapter].
func (h *httpServerAdapter) ShareCipher(ctx context.Context, cipherID string, req models.ShareCipherRequest) (models.Cipher, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", cipherID).
		SetBody(req).
		Put("/ciphers/{id}/share")
	if err != nil {
		return models.Cipher{}, mapTransportError("share cipher request", err)
	}

	return decodeCipher(resp)
}

// CreateAttachment implements [ServerAdapter]. The file is streamed as a
// multipart form field named "data".
func (h *httpServerAdapter) CreateAttachment(ctx context.Context, cipherID, fileName string, content io.Reader) (models.Cipher, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", cipherID).
		SetFileReader("data", fileName, content).
		Post("/ciphers/{id}/attachment")
	if err != nil {
		return models.Cipher{}, mapTransportError("create attachment request", err)
	}

	return decodeCipher(resp)
}

// DeleteAttachment implements [ServerAdapter].
func (h *httpServerAdapter) DeleteAttachment(ctx context.Context, cipherID, attachmentID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"id": cipherID, "attachmentId": attachmentID}).
		Delete("/ciphers/{id}/attachment/{attachmentId}")
	if err != nil {
		return mapTransportError("delete attachment request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.api.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func decodeCipher(resp *resty.Response) (models.Cipher, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Cipher{}, err
	}

	var out models.Cipher
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return models.Cipher{}, fmt.Errorf("decode cipher response: %w", err)
	}
	return out, nil
}

func boolToFormValue(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

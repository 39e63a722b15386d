// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-keeper-client/internal/config"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, "device-1", logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: ""}, "d", logger.Nop())
	require.Error(t, err)

	_, err = NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:8080", IdentityAddress: "http://"}, "d", logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"localhost:8080", "http://localhost:8080"},
		{"https://vault.example.com/", "https://vault.example.com"},
		{" http://127.0.0.1:9000 ", "http://127.0.0.1:9000"},
	}
	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewHTTPServerAdapter_SeparateIdentityHost(t *testing.T) {
	var identityHits int
	identity := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identityHits++
		writeJSON(t, w, http.StatusOK, models.LoginResponse{AccessToken: "tok"})
	}))
	defer identity.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("login must not reach the api host: %s", r.URL.Path)
	}))
	defer api.Close()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:     api.URL,
		IdentityAddress: identity.URL,
		RequestTimeout:  time.Second,
	}, "device-1", logger.Nop())
	require.NoError(t, err)

	_, err = a.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, 1, identityHits)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/connect/token", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "alice@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "hash", r.PostForm.Get("password"))
		assert.Equal(t, "device-1", r.PostForm.Get("deviceIdentifier"))
		assert.Equal(t, "123456", r.PostForm.Get("twoFactorToken"))
		assert.Equal(t, "1", r.PostForm.Get("twoFactorProvider"))
		assert.Equal(t, "1", r.PostForm.Get("twoFactorRemember"))
		assert.Equal(t, "captcha-token", r.PostForm.Get("captchaResponse"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token":  "access",
			"refresh_token": "refresh",
			"expires_in":    3600,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{
		Email:        "alice@example.com",
		Password:     "hash",
		CaptchaToken: "captcha-token",
		TwoFactor:    &models.TwoFactorData{Code: "123456", Method: models.TwoFactorEmail, Remember: true},
	})

	require.NoError(t, err)
	assert.Equal(t, "access", got.AccessToken)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.Equal(t, "access", a.Token())
}

func TestLogin_FirstFactorOmitsTwoFactorFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		_, hasToken := r.PostForm["twoFactorToken"]
		_, hasCaptcha := r.PostForm["captchaResponse"]
		assert.False(t, hasToken)
		assert.False(t, hasCaptcha)
		writeJSON(t, w, http.StatusOK, map[string]any{"access_token": "a"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "h"})
	require.NoError(t, err)
}

func TestLogin_CaptchaRequired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]any{"HCaptcha_SiteKey": "site-key"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c"})

	require.NoError(t, err)
	assert.Equal(t, "site-key", got.CaptchaSiteKey)
	assert.Empty(t, a.Token())
}

func TestLogin_TwoFactorRequired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]any{
			"TwoFactorProviders2": map[string]any{"0": nil, "1": map[string]any{"Email": "a***@b.c"}},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Email: "a@b.c"})

	require.NoError(t, err)
	assert.Len(t, got.TwoFactorProviders, 2)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]any{
			"ErrorModel": map[string]any{"Message": "Код двухэтапной проверки неверен."},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Email: "a@b.c"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	require.NotNil(t, got.ErrorModel)
	assert.Equal(t, "Код двухэтапной проверки неверен.", got.ErrorModel.Message)
}

func TestLogin_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestLogin_NoNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrNoNetwork)
}

func TestLogin_ContextCanceledIsNotNoNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).Login(ctx, models.LoginRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrNoNetwork)
}

// ── ResendVerificationEmail ──────────────────────────────────────────────────

func TestResendVerificationEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/two-factor/send-email-login", r.URL.Path)
		var body models.ResendEmailRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.c", body.Email)
		assert.Equal(t, "hash", body.MasterPasswordHash)
		assert.Equal(t, "device-1", body.DeviceIdentifier)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).ResendVerificationEmail(context.Background(), models.ResendEmailRequest{
		Email:              "a@b.c",
		MasterPasswordHash: "hash",
	})
	require.NoError(t, err)
}

func TestResendVerificationEmail_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]any{"message": "Пользователь не найден"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).ResendVerificationEmail(context.Background(), models.ResendEmailRequest{})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Пользователь не найден")
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestSync_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.SyncResponse{
			Profile: models.Profile{ID: "u1", Email: "a@b.c", Premium: true},
			Ciphers: []models.Cipher{{ID: "c1", Name: "GitHub"}},
			Collections: []models.Collection{
				{ID: "col-1", OrganizationID: "org-1", Name: "Team"},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")
	got, err := a.Sync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "u1", got.Profile.ID)
	require.Len(t, got.Ciphers, 1)
	assert.Equal(t, "GitHub", got.Ciphers[0].Name)
	assert.Len(t, got.Collections, 1)
}

func TestSync_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Sync(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSync_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Sync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode sync response")
}

// ── ShareCipher ──────────────────────────────────────────────────────────────

func TestShareCipher(t *testing.T) {
	org := "org-1"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/ciphers/c1/share", r.URL.Path)

		var body models.ShareCipherRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"col-1", "col-2"}, body.CollectionIDs)
		assert.Equal(t, "org-1", *body.Cipher.OrganizationID)

		out := body.Cipher
		out.CollectionIDs = body.CollectionIDs
		writeJSON(t, w, http.StatusOK, out)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ShareCipher(context.Background(), "c1", models.ShareCipherRequest{
		Cipher:        models.Cipher{ID: "c1", OrganizationID: &org},
		CollectionIDs: []string{"col-1", "col-2"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"col-1", "col-2"}, got.CollectionIDs)
}

func TestShareCipher_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ShareCipher(context.Background(), "c1", models.ShareCipherRequest{})
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Attachments ──────────────────────────────────────────────────────────────

func TestCreateAttachment_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ciphers/c1/attachment", r.URL.Path)

		file, header, err := r.FormFile("data")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)

		assert.Equal(t, "notes.txt", header.Filename)
		assert.Equal(t, "hello", string(content))

		writeJSON(t, w, http.StatusOK, models.Cipher{
			ID:          "c1",
			Attachments: []models.Attachment{{ID: "a1", FileName: "notes.txt", Size: 5}},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateAttachment(context.Background(), "c1", "notes.txt", strings.NewReader("hello"))

	require.NoError(t, err)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "a1", got.Attachments[0].ID)
}

func TestCreateAttachment_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateAttachment(context.Background(), "c1", "big.bin", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestDeleteAttachment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/ciphers/c1/attachment/a1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).DeleteAttachment(context.Background(), "c1", "a1"))
}

func TestDeleteAttachment_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteAttachment(context.Background(), "c1", "a1")
	assert.ErrorIs(t, err, ErrNotFound)
}

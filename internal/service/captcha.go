// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-keeper-client/models"
)

const (
	// DefaultCaptchaCallbackURI is used when no callback listener runs. The
	// connector page then shows the token for the user to paste.
	DefaultCaptchaCallbackURI = "go-pass-keeper://captcha-callback"

	// CaptchaCallbackPath is served by the callback listener.
	CaptchaCallbackPath = "/captcha-callback"

	captchaConnectorPath = "/captcha-mobile-connector.html"
	recoveryCodePath     = "/#/recover-2fa"
	captchaLocale        = "ru"
)

type captchaConnectorData struct {
	SiteKey     string `json:"siteKey"`
	Locale      string `json:"locale"`
	CallbackURI string `json:"callbackUri"`
}

// WebVault builds links to the web-vault pages the client sends the user
// to.
type WebVault struct {
	// Address is the base URL of the web vault.
	Address string
	// CaptchaCallback receives the solved captcha token. Empty means
	// DefaultCaptchaCallbackURI.
	CaptchaCallback string
}

// NewWebVault returns the links for address. callbackAddress is the
// host:port of the captcha callback listener and may be empty.
func NewWebVault(address, callbackAddress string) WebVault {
	w := WebVault{Address: address}
	if callbackAddress != "" {
		w.CaptchaCallback = "http://" + callbackAddress + CaptchaCallbackPath
	}
	return w
}

func (w WebVault) callbackURI() string {
	if w.CaptchaCallback == "" {
		return DefaultCaptchaCallbackURI
	}
	return w.CaptchaCallback
}

// CaptchaURI returns the web-vault page that renders the captcha identified
// by siteKey. The result only depends on w and siteKey.
func (w WebVault) CaptchaURI(siteKey string) string {
	callback := w.callbackURI()

	// marshalling a struct of strings cannot fail
	data, _ := json.Marshal(captchaConnectorData{
		SiteKey:     siteKey,
		Locale:      captchaLocale,
		CallbackURI: callback,
	})

	q := url.Values{}
	q.Set("data", base64.URLEncoding.EncodeToString(data))
	q.Set("parent", callback)
	q.Set("v", "1")

	return strings.TrimRight(w.Address, "/") + captchaConnectorPath + "?" + q.Encode()
}

// RecoveryCodeURI returns the web-vault page where a two-factor recovery
// code can be redeemed.
func (w WebVault) RecoveryCodeURI() string {
	return strings.TrimRight(w.Address, "/") + recoveryCodePath
}

// captchaBroadcast hands every captcha result to the subscribers present at
// the time it is published. Nothing is replayed to later subscribers.
type captchaBroadcast struct {
	mu     sync.Mutex
	subs   map[uint64]chan models.CaptchaTokenResult
	nextID uint64
}

func newCaptchaBroadcast() *captchaBroadcast {
	return &captchaBroadcast{subs: make(map[uint64]chan models.CaptchaTokenResult)}
}

func (b *captchaBroadcast) subscribe(ctx context.Context) <-chan models.CaptchaTokenResult {
	ch := make(chan models.CaptchaTokenResult, 1)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, id)
		close(ch)
		b.mu.Unlock()
	}()

	return ch
}

// publish never blocks: an unread result is replaced by the newer one.
func (b *captchaBroadcast) publish(result models.CaptchaTokenResult) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case <-ch:
		default:
		}
		ch <- result
	}
}

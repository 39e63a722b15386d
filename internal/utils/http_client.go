// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request of the client.
const UserAgent = "go-pass-keeper-cli"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client that asks for JSON and identifies
// itself with [UserAgent]. Each call returns an independent client with its
// own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	client.SetBaseURL("https://api.example.com")
//	resp, err := client.R().Get("/sync")
func NewHTTPClient() *HTTPClient {
	c := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)
	return &HTTPClient{Client: c}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for an optional scheme,
// host and port. It implements the flag.Value interface.
type NetAddress struct {
	Scheme string
	Host   string
	Port   int
}

// ParseFlags parses all configuration flags from args using a dedicated
// flag set, so it can be called repeatedly (e.g. in tests).
//
// Flags:
//
//	-a api server address in format [scheme://][host]:[port]
//	-identity-address identity server address
//	-web-vault-address web vault address
//	-callback-address loopback address of the captcha callback listener
//	-d database DSN
//	-c/-config json file path with configs
//	-state-key saved-state encryption secret
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval vault sync interval (e.g., "5m")
//
// Positional arguments remaining after the flags are stored in
// [StructuredConfig.Args].
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, identityAddress, webVaultAddress, callbackAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var stateKey string
	var requestTimeout time.Duration
	var syncInterval time.Duration

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "API server address [scheme://]host:port")
	fs.Var(&identityAddress, "identity-address", "Identity server address [scheme://]host:port")
	fs.Var(&webVaultAddress, "web-vault-address", "Web vault address [scheme://]host:port")
	fs.Var(&callbackAddress, "callback-address", "Captcha callback listener address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&stateKey, "state-key", "", "Saved-state encryption key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Vault sync interval (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			StateKey: stateKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:     serverAddress.String(),
			IdentityAddress: identityAddress.String(),
			WebVaultAddress: webVaultAddress.String(),
			RequestTimeout:  requestTimeout,
			CallbackAddress: callbackAddress.String(),
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

// String returns a canonical [scheme://]host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	hostPort := a.Host + ":" + strconv.Itoa(a.Port)
	if a.Scheme != "" {
		return a.Scheme + "://" + hostPort
	}
	return hostPort
}

// Set parses the input string of form [scheme://]host:port and populates the
// NetAddress. It validates the port range, checks IP correctness unless host
// is "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	var scheme string
	if i := strings.Index(s, "://"); i >= 0 {
		scheme = s[:i]
		s = s[i+3:]
		if scheme != "http" && scheme != "https" {
			return errors.New("scheme must be http or https")
		}
	}

	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Scheme = scheme
	a.Host = host
	a.Port = port
	return nil
}

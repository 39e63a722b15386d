// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-pass-keeper-client/models"
)

// ErrEmptyToken is returned by ParseAccessToken for a blank token string.
var ErrEmptyToken = errors.New("empty access token")

// ParseAccessToken decodes the claims of an access token issued by the
// identity server.
//
// The signature is NOT verified: the client does not hold the signing key
// and only reads the claims to describe the signed-in account. The server
// verifies the token on every request.
//
// Returns an error if the token is malformed or has no subject.
//
// Example usage:
//
//	token, err := utils.ParseAccessToken(resp.AccessToken)
//	if err != nil {
//	    // handle malformed token
//	}
//	userID, _ := token.GetUserID()
func ParseAccessToken(tokenString string) (models.Token, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return models.Token{}, ErrEmptyToken
	}

	var claims models.AccessTokenClaims
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred parsing access token: %w", err)
	}

	out := models.Token{Token: token, Claims: claims, SignedString: tokenString}
	if _, err := out.GetUserID(); err != nil {
		return models.Token{}, err
	}

	return out, nil
}

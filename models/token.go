// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims is the claim set of an access token issued by the
// identity server. Only the fields the client reads are declared.
type AccessTokenClaims struct {
	jwt.RegisteredClaims

	Email   string `json:"email"`
	Name    string `json:"name"`
	Premium bool   `json:"premium"`

	// OrgOwner and Orgs list organization IDs the user belongs to.
	OrgOwner []string `json:"orgowner,omitempty"`
	Orgs     []string `json:"orgs,omitempty"`
}

// Token wraps a parsed access token.
//
// The signature is not verified on the client: the server is the verifier,
// the client only reads the claims to build its account state.
type Token struct {
	// Token is the underlying parsed JWT.
	*jwt.Token `json:"-"`

	// Claims are the decoded access token claims.
	Claims AccessTokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetUserID returns the "sub" claim.
func (t *Token) GetUserID() (string, error) {
	sub, err := t.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}
	return sub, nil
}

// OrganizationIDs returns every organization ID mentioned in the token,
// without duplicates and in claim order.
func (t *Token) OrganizationIDs() []string {
	seen := make(map[string]struct{}, len(t.Claims.OrgOwner)+len(t.Claims.Orgs))
	ids := make([]string, 0, len(seen))
	for _, list := range [][]string{t.Claims.OrgOwner, t.Claims.Orgs} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection is an organization-owned sharing scope a cipher can be
// assigned to.
type Collection struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`

	// ReadOnly collections cannot receive new ciphers from the current user.
	ReadOnly bool `json:"readOnly"`
}

// Organization is a sharing scope the active account is a member of.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

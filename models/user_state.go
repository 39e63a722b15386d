// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is a single signed-in user known to this client.
type Account struct {
	// UserID is the server-side identifier of the user (JWT "sub").
	UserID string `json:"userId"`

	// Email is the login e-mail of the user.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// IsPremium is true when the user has access to premium features
	// such as file attachments.
	IsPremium bool `json:"isPremium"`

	// Organizations lists every organization the user is a member of.
	Organizations []Organization `json:"organizations,omitempty"`
}

// UserState is the session-level view of the signed-in accounts.
type UserState struct {
	ActiveUserID string    `json:"activeUserId"`
	Accounts     []Account `json:"accounts"`
}

// ActiveAccount returns the account whose UserID equals ActiveUserID.
func (u UserState) ActiveAccount() (Account, bool) {
	for _, acc := range u.Accounts {
		if acc.UserID == u.ActiveUserID {
			return acc, true
		}
	}
	return Account{}, false
}

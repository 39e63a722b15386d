// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUsage is returned for a malformed command line.
var ErrUsage = errors.New("usage: two-factor <email> | move <cipher-id> | attachments <cipher-id> | logout")

// Screen names what the client should open.
type Screen string

const (
	ScreenTwoFactor   Screen = "two-factor"
	ScreenMove        Screen = "move"
	ScreenAttachments Screen = "attachments"
	ScreenLogout      Screen = "logout"
)

// Command is a parsed command line.
type Command struct {
	Screen Screen
	// Target is the e-mail for ScreenTwoFactor and the cipher id otherwise.
	Target string
}

// ParseCommand parses the positional arguments left after the flags.
func ParseCommand(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, ErrUsage
	}

	screen := Screen(strings.ToLower(args[0]))
	switch screen {
	case ScreenLogout:
		if len(args) != 1 {
			return Command{}, ErrUsage
		}
		return Command{Screen: screen}, nil
	case ScreenTwoFactor, ScreenMove, ScreenAttachments:
		if len(args) != 2 || strings.TrimSpace(args[1]) == "" {
			return Command{}, fmt.Errorf("%w: %s needs exactly one argument", ErrUsage, screen)
		}
		return Command{Screen: screen, Target: strings.TrimSpace(args[1])}, nil
	default:
		return Command{}, fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
}

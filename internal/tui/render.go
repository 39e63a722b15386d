// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

const globalHints = "ctrl+c: выход │ f1: о программе"

var divider = strings.Repeat("─", 54)

// renderPage frames body under title. The page's own key hints go above the
// global ones; an empty body renders as "-".
func renderPage(title, body, hints string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	parts := []string{
		titleStyle.Render(title),
		indent(divider),
		"",
		indent(body),
		"",
		indent(divider),
	}
	if strings.TrimSpace(hints) != "" {
		parts = append(parts, indent(hintStyle.Render(hints)))
	}
	parts = append(parts, indent(hintStyle.Render(globalHints)))

	return strings.Join(parts, "\n")
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

// withOverlay places box under the page body.
func withOverlay(page, box string) string {
	if box == "" {
		return page
	}
	return lipgloss.JoinVertical(lipgloss.Left, page, "", box)
}

func cursor(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

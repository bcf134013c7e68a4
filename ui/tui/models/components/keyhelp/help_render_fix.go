// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.
// Package keyhelp renders the key binding help shown in the footer.
package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// fit appends parts while they fit into width, ending with the ellipsis tail
// when something had to be dropped. A zero width means unlimited.
func fit(m help.Model, parts []string) []string {
	if m.Width <= 0 {
		return parts
	}
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var out []string
	used := 0
	for i, part := range parts {
		w := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+w <= m.Width) || (!last && used+w+tailLen <= m.Width) {
			used += w
			out = append(out, part)
			continue
		}
		if used+tailLen <= m.Width {
			out = append(out, tail)
		}
		break
	}
	return out
}

// ShortHelpView renders enabled bindings on one line. help.Model's own
// version counts disabled bindings when deciding where to truncate.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	var items []string
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}
	return strings.Join(fit(m, items), "")
}

// FullHelpView renders one column per group, skipping groups without any
// enabled binding.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			continue
		}
		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}
		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, cols)...)
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/nvasko/sysforge/internal/menu"
)

const (
	popupMaxWidth = 60
	popupMinWidth = 24

	// Result bodies are capped unless -verbose is set; the log always
	// carries the full text.
	actionBodyMaxLines = 10
)

// View implements tea.Model. It is a pure function of the model state; no
// field is mutated while rendering.
func (m *Model) View() string {
	width := m.effectiveWidth()
	height := m.effectiveHeight()

	var frame string
	if m.view == menu.HelpManual {
		frame = m.viewManual(width)
	} else {
		frame = m.viewMenu(width)
	}
	if m.popup.active() {
		frame = compose(frame, m.renderPopup(width), width, height)
	}
	return frame
}

func (m *Model) viewMenu(width int) string {
	lines := make([]string, 0, 16)
	if m.view == menu.MainMenu {
		for _, row := range bannerRows {
			lines = append(lines, styles.Banner.Render(row))
		}
		lines = append(lines, "")
	}
	if title := m.titles[m.view]; title != "" {
		lines = append(lines, styles.Title.Render(title))
		lines = append(lines, "")
	}
	list := m.currentList()
	if list == nil || list.Len() == 0 {
		lines = append(lines, styles.Info.Render("(no entries)"))
	} else {
		for i, entry := range list.Items() {
			lines = append(lines, m.renderEntry(entry, i == list.Index(), width))
		}
	}
	if m.showFooter {
		lines = append(lines, "", m.renderFooter())
	}
	for i, line := range lines {
		lines[i] = truncate.String(line, uint(width))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderEntry(entry menu.Entry, selected bool, width int) string {
	label := entry.Label
	if entry.Icon != "" {
		label = entry.Icon + " " + label
	}
	var line string
	if selected {
		line = styles.SelectedItemIndicator.Render("▌ ") + styles.SelectedItem.Render(label)
		if entry.Help != "" {
			line += styles.ItemHelp.Render("  " + entry.Help)
		}
	} else {
		line = styles.ItemIndicator.Render("  ") + styles.Item.Render(label)
	}
	return line
}

func (m *Model) renderFooter() string {
	parts := []string{
		styles.FooterKey.Render("↑↓") + styles.Footer.Render(" move"),
		styles.FooterKey.Render("enter") + styles.Footer.Render(" select"),
		styles.FooterKey.Render("esc") + styles.Footer.Render(" back"),
		styles.FooterKey.Render("q") + styles.Footer.Render(" quit"),
		styles.FooterKey.Render("?") + styles.Footer.Render(" help"),
	}
	return strings.Join(parts, styles.Footer.Render("  "))
}

func (m *Model) viewManual(width int) string {
	body := wordwrap.String(menu.HelpManualText, width-2)
	title := m.titles[menu.HelpManual]
	if title == "" {
		title = "Help Manual"
	}
	lines := []string{
		styles.Title.Render(title),
		"",
		styles.Manual.Render(body),
		"",
		styles.Footer.Render("press esc to return"),
	}
	return strings.Join(lines, "\n")
}

// renderPopup draws the active popup box. The body is word-wrapped to the
// box width on every frame so resize events reflow the text.
func (m *Model) renderPopup(width int) string {
	boxWidth := width * 2 / 3
	if boxWidth > popupMaxWidth {
		boxWidth = popupMaxWidth
	}
	if boxWidth < popupMinWidth {
		boxWidth = popupMinWidth
	}
	inner := boxWidth - 4 // border plus padding

	lines := make([]string, 0, 8)
	if m.popup.title != "" {
		lines = append(lines, styles.PopupTitle.Render(truncate.String(m.popup.title, uint(inner))))
		lines = append(lines, "")
	}
	switch m.popup.kind {
	case popupConfirm:
		lines = append(lines, wrapStyled(m.popup.body, inner, styles.PopupBody))
		lines = append(lines, "")
		lines = append(lines, styles.ConfirmYes.Render("[y]es")+styles.PopupBody.Render("  ")+styles.ConfirmNo.Render("[n]o"))
	case popupInput:
		lines = append(lines, m.popup.input.View())
		lines = append(lines, "")
		lines = append(lines, styles.Footer.Render("enter submit · esc cancel"))
	case popupSelect:
		lines = append(lines, styles.InputPrompt.Render("> ")+styles.PopupBody.Render(m.popup.query))
		lines = append(lines, "")
		if m.popup.choices.Len() == 0 {
			lines = append(lines, styles.Info.Render(fmt.Sprintf("No matches for %q", m.popup.query)))
		} else {
			for i, choice := range m.popup.choices.Items() {
				choice = truncate.String(choice, uint(inner-2))
				if i == m.popup.choices.Index() {
					lines = append(lines, styles.SelectedItemIndicator.Render("▌ ")+styles.SelectedItem.Render(choice))
				} else {
					lines = append(lines, styles.ItemIndicator.Render("  ")+styles.Item.Render(choice))
				}
			}
		}
	case popupAction:
		switch {
		case m.popup.working:
			lines = append(lines, wrapStyled(m.popup.body, inner, styles.PopupWorking))
		case m.popup.failed:
			lines = append(lines, wrapStyled(m.popup.body, inner, styles.PopupError))
			lines = append(lines, "")
			lines = append(lines, styles.Footer.Render("press esc to dismiss"))
		default:
			body := m.popup.body
			if !m.verbose {
				body = capLines(body, actionBodyMaxLines)
			}
			lines = append(lines, wrapStyled(body, inner, styles.PopupBody))
			lines = append(lines, "")
			lines = append(lines, styles.Footer.Render("press enter to dismiss"))
		}
	default:
		lines = append(lines, wrapStyled(m.popup.body, inner, styles.PopupBody))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return styles.PopupBorder.Width(boxWidth - 2).Render(content)
}

func capLines(text string, max int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= max {
		return text
	}
	return strings.Join(lines[:max], "\n") + "\n…"
}

func wrapStyled(text string, width int, style *lipgloss.Style) string {
	wrapped := wordwrap.String(text, width)
	if style == nil {
		return wrapped
	}
	parts := strings.Split(wrapped, "\n")
	for i, part := range parts {
		parts[i] = style.Render(part)
	}
	return strings.Join(parts, "\n")
}

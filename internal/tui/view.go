package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/contact-manager/internal/contact"
	"github.com/pdxmph/contact-manager/internal/form"
)

const defaultWidth = 100

// Column widths; the address column takes what is left.
const (
	checkWidth   = 4
	nameWidth    = 20
	contactWidth = 12
	emailWidth   = 28
	minAddrWidth = 10
)

// View renders the UI.
func (m Model) View() string {
	if m.pending.Open() {
		return m.renderConfirm()
	}
	if form.IsOpen(m.modal) {
		return m.renderForm()
	}

	width := m.width
	if width == 0 {
		width = defaultWidth
	}

	var lines []string
	lines = append(lines, titleStyle.Render("Contact Manager"))
	lines = append(lines, "")
	lines = append(lines, m.renderControls())
	lines = append(lines, "")
	lines = append(lines, m.renderList(width))
	lines = append(lines, "")
	if m.status != "" {
		lines = append(lines, statusStyle.Render(m.status))
	}
	lines = append(lines, m.renderHelp())

	return strings.Join(lines, "\n")
}

func (m Model) renderControls() string {
	var search string
	switch {
	case m.searchMode:
		search = m.search.View()
	case m.search.Value() != "":
		search = "Search: " + m.search.Value()
	default:
		search = dimStyle.Render(m.search.Placeholder)
	}

	var buttons []string
	if n := len(m.store.SelectedIDs()); n > 0 {
		buttons = append(buttons, fmt.Sprintf("[Delete (%d)]", n))
	}
	buttons = append(buttons, "[Add Contact]")

	return search + "   " + strings.Join(buttons, " ")
}

// renderList renders the contact table.
func (m Model) renderList(width int) string {
	contacts := m.visible()
	if len(contacts) == 0 {
		return dimStyle.Render("No contacts found.")
	}

	addrWidth := width - checkWidth - nameWidth - contactWidth - emailWidth - 4
	if addrWidth < minAddrWidth {
		addrWidth = minAddrWidth
	}

	row := func(check, name, phone, email, addr string) string {
		return strings.Join([]string{
			fit(check, checkWidth),
			fit(name, nameWidth),
			fit(phone, contactWidth),
			fit(email, emailWidth),
			fit(addr, addrWidth),
		}, " ")
	}

	var lines []string
	lines = append(lines, headerStyle.Render(row("", "Name", "Contact", "Email", "Address")))
	lines = append(lines, strings.Repeat("─", checkWidth+nameWidth+contactWidth+emailWidth+addrWidth+4))

	for i, c := range contacts {
		check := "[ ]"
		if m.store.IsSelected(c.ID) {
			check = "[x]"
		}
		line := row(check, c.Name, c.ContactNo, c.Email, c.FullAddress())
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the help line.
func (m Model) renderHelp() string {
	if m.searchMode {
		return " Type to search • ↑/↓: navigate • Enter: confirm • Esc: cancel"
	}

	help := " j/k: navigate • /: search • space: select • a: add • e: edit • d: delete"
	if len(m.store.SelectedIDs()) > 0 {
		help += " • D: delete selected • c: clear selection"
	}
	if m.search.Value() != "" {
		help += " • Esc: clear search"
	}
	if m.exportDir != "" {
		help += " • w: export"
	}
	help += " • q: quit"
	return help
}

// renderForm renders the add/edit modal overlay.
func (m Model) renderForm() string {
	var lines []string
	lines = append(lines, titleStyle.Render(form.Title(m.modal)))
	lines = append(lines, strings.Repeat("─", 50))
	lines = append(lines, "")

	for i, f := range form.Fields {
		label, required := form.Label(f)
		if required {
			label += requiredStyle.Render("*")
		} else {
			label += " " + optionalStyle.Render("(Optional)")
		}
		lines = append(lines, label)

		var fieldView string
		if f == contact.FieldState {
			state := m.draft.Get(f)
			if state == "" {
				state = dimStyle.Render("Enter State")
			}
			if i == m.field {
				fieldView = selectedStyle.Render("< ") + state + selectedStyle.Render(" >")
			} else {
				fieldView = "  " + state
			}
		} else if i == m.field {
			fieldView = "> " + m.inputs[i].View()
		} else {
			value := m.inputs[i].Value()
			if value == "" {
				value = dimStyle.Render(m.inputs[i].Placeholder)
			}
			fieldView = "  " + value
		}
		lines = append(lines, fieldView)

		if msg, ok := m.errors[f]; ok {
			lines = append(lines, errorStyle.Render("  "+msg))
		}
		lines = append(lines, "")
	}

	lines = append(lines, fmt.Sprintf("[Cancel: esc]  [%s: enter]", form.SubmitLabel(m.modal)))
	lines = append(lines, dimStyle.Render("Tab/↓: next • Shift+Tab/↑: previous • ←/→: change state"))

	return m.overlay(borderStyle.
		Padding(1).
		Width(60).
		Render(strings.Join(lines, "\n")))
}

// renderConfirm renders the delete confirmation overlay.
func (m Model) renderConfirm() string {
	var lines []string
	lines = append(lines, dangerStyle.Render(m.pending.Title()))
	lines = append(lines, "")
	lines = append(lines, m.pending.Message())
	lines = append(lines, "")
	lines = append(lines, "[Cancel: n/esc]  "+dangerStyle.Render("[Delete: y/enter]"))

	return m.overlay(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(1).
		Width(60).
		Render(strings.Join(lines, "\n")))
}

// overlay centers box on the screen.
func (m Model) overlay(box string) string {
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

// fit pads or truncates s to exactly width cells.
func fit(s string, width int) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "…"
	}
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

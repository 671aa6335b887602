package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m dashboardModel) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Storefront"))
	b.WriteString("  ")
	b.WriteString(m.userLine())
	b.WriteString("\n\n")

	b.WriteString(m.tabsLine())
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.body()))
	b.WriteString("\n")

	if m.inputting {
		b.WriteString("toggle: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help()))

	return appStyle.Render(b.String())
}

func (m dashboardModel) userLine() string {
	id := m.registry.Identity
	if id.Loading() {
		return m.spinner.View() + " checking session"
	}
	if user, ok := id.User(); ok {
		return fmt.Sprintf("%s <%s>", user.Name, user.Email)
	}
	return helpStyle.Render("not signed in")
}

func (m dashboardModel) tabsLine() string {
	parts := make([]string, 0, len(tabs))
	for i, t := range tabs {
		c, _ := m.registry.Collection(t)
		label := fmt.Sprintf("%s (%d)", t, c.Len())
		if i == m.active {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "   "))
}

func (m dashboardModel) body() string {
	c, _ := m.registry.Collection(tabs[m.active])

	var lines []string
	if c.Loading() {
		lines = append(lines, m.spinner.View()+" loading")
	}
	members := m.members()
	if len(members) == 0 {
		lines = append(lines, helpStyle.Render("empty"))
	}
	for i, id := range members {
		if i == m.cursor {
			lines = append(lines, cursorStyle.Render("> "+id))
		} else {
			lines = append(lines, "  "+id)
		}
	}
	if msg := c.LastError(); msg != "" {
		lines = append(lines, errorStyle.Render(msg))
	}
	return strings.Join(lines, "\n")
}

func (m dashboardModel) help() string {
	if m.inputting {
		return "enter: toggle  esc: cancel"
	}
	h := "tab: switch  ↑/↓: move  r: refresh  c: copy  s: sign in  o: sign out  q: quit"
	if tabs[m.active].Mutable() {
		h = "a: toggle id  t: toggle selected  " + h
	}
	return h
}

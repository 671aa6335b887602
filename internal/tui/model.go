package tui

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var tabs = []models.Collection{
	models.CollectionWishlist,
	models.CollectionCart,
	models.CollectionBought,
}

// copyToClipboard is swapped in tests.
var copyToClipboard = clipboard.WriteAll

type dashboardModel struct {
	ctx      context.Context
	registry *store.Registry

	active int
	cursor int

	input     textinput.Model
	inputting bool

	spinner spinner.Model
	status  string
	quit    bool
}

func newDashboardModel(ctx context.Context, registry *store.Registry) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.Placeholder = "item id"
	in.CharLimit = 128

	return dashboardModel{
		ctx:      ctx,
		registry: registry,
		input:    in,
		spinner:  s,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		m.clampCursor()
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			m.status = msg.label + " failed"
		} else {
			m.status = msg.label + " done"
		}
		m.clampCursor()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed"
		} else {
			m.status = "copied " + msg.id
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.inputting {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m dashboardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.inputting = false
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	case key.Matches(msg, keys.enter):
		id := m.input.Value()
		m.inputting = false
		m.input.Blur()
		m.input.SetValue("")
		if id == "" {
			return m, nil
		}
		return m, m.toggle(id)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(msg, keys.next):
		m.active = (m.active + 1) % len(tabs)
		m.cursor = 0
	case key.Matches(msg, keys.prev):
		m.active = (m.active + len(tabs) - 1) % len(tabs)
		m.cursor = 0
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.members())-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.refresh):
		return m, m.refresh()
	case key.Matches(msg, keys.add):
		if tabs[m.active].Mutable() {
			m.inputting = true
			return m, m.input.Focus()
		}
	case key.Matches(msg, keys.toggle):
		if id, ok := m.selected(); ok && tabs[m.active].Mutable() {
			return m, m.toggle(id)
		}
	case key.Matches(msg, keys.copy):
		if id, ok := m.selected(); ok {
			return m, func() tea.Msg {
				return copiedMsg{id: id, err: copyToClipboard(id)}
			}
		}
	case key.Matches(msg, keys.login):
		return m, m.signIn()
	case key.Matches(msg, keys.logout):
		m.registry.Identity.SignOut()
		m.status = "signed out"
	}
	return m, nil
}

// members returns the active collection sorted, so the cursor is stable.
func (m dashboardModel) members() []string {
	c, ok := m.registry.Collection(tabs[m.active])
	if !ok {
		return nil
	}
	members := c.Members()
	slices.Sort(members)
	return members
}

func (m dashboardModel) selected() (string, bool) {
	members := m.members()
	if m.cursor < 0 || m.cursor >= len(members) {
		return "", false
	}
	return members[m.cursor], true
}

func (m *dashboardModel) clampCursor() {
	if n := len(m.members()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m dashboardModel) refresh() tea.Cmd {
	ctx, registry := m.ctx, m.registry
	return func() tea.Msg {
		return opDoneMsg{label: "refresh", err: registry.Refresh(ctx)}
	}
}

func (m dashboardModel) toggle(id string) tea.Cmd {
	coll, ok := m.registry.Mutable(tabs[m.active])
	if !ok {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{label: "toggle " + id, err: coll.Toggle(ctx, id)}
	}
}

func (m dashboardModel) signIn() tea.Cmd {
	ctx, registry := m.ctx, m.registry
	return func() tea.Msg {
		if err := registry.Identity.SignInWithGoogle(ctx); err != nil {
			return opDoneMsg{label: "sign in", err: err}
		}
		return opDoneMsg{label: "sign in", err: registry.Refresh(ctx)}
	}
}

// Package termview is an interactive terminal viewer for focus scenes.
// Arrow keys (or hjkl) move focus the same way a game loop would.
package termview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/phanxgames/wayfinder"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// ReloadMsg replaces the viewed scene. A non-nil Err keeps the current scene
// and shows the error instead.
type ReloadMsg struct {
	Scene *wayfinder.Scene
	Err   error
}

// Model is the bubbletea model for the viewer.
type Model struct {
	title  string
	scene  *wayfinder.Scene
	logger *log.Logger
	keys   keyMap
	help   help.Model
	load   func(string) (*wayfinder.Scene, error)

	width, height int
	status        string
	err           error
}

// New returns a viewer for s. A nil logger uses log.Default().
func New(title string, s *wayfinder.Scene, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	return Model{title: title, scene: s, logger: logger, keys: defaultKeys, help: help.New()}
}

// WithLoader returns a copy of m that rebuilds its scene with load when a
// FileChangedMsg arrives.
func (m Model) WithLoader(load func(string) (*wayfinder.Scene, error)) Model {
	m.load = load
	return m
}

// Scene returns the scene currently shown.
func (m Model) Scene() *wayfinder.Scene {
	return m.scene
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(wayfinder.Up)
		case key.Matches(msg, m.keys.Down):
			m.move(wayfinder.Down)
		case key.Matches(msg, m.keys.Left):
			m.move(wayfinder.Left)
		case key.Matches(msg, m.keys.Right):
			m.move(wayfinder.Right)
		}
	case FileChangedMsg:
		if m.load != nil {
			s, err := m.load(msg.Path)
			m.reload(ReloadMsg{Scene: s, Err: err})
		}
	case ReloadMsg:
		m.reload(msg)
	}
	return m, nil
}

func (m *Model) move(dir wayfinder.CompassDirection) {
	from := m.scene.Focused()
	if m.scene.MoveFocus(dir) {
		m.status = fmt.Sprintf("%s: %s -> %s", dir, from, m.scene.Focused())
	} else {
		m.status = fmt.Sprintf("%s: no target from %s", dir, from)
	}
}

// reload swaps in a new scene, carrying the focused node across by name when
// the new scene does not set its own focus.
func (m *Model) reload(msg ReloadMsg) {
	if msg.Err != nil {
		m.err = msg.Err
		m.logger.Warn("reload failed", "err", msg.Err)
		return
	}
	if msg.Scene == nil {
		return
	}
	m.err = nil
	if prev := m.scene.Focused(); prev != nil && msg.Scene.Focused() == nil {
		if n := msg.Scene.Root().FindChild(prev.Name); n != nil && n.IsFocusable() {
			msg.Scene.SetFocus(n)
		}
	}
	m.scene = msg.Scene
	m.status = "reloaded"
	m.logger.Info("scene reloaded", "focus", m.scene.Focused())
}

func (m Model) View() string {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteByte('\n')
	b.WriteString(Render(m.scene, w, max(h-3, 1)))
	b.WriteByte('\n')
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("focus: %s  %s", m.scene.Focused(), m.status)))
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// Package container is the root view. It owns the lifecycle controller,
// renders the active payment flow between a header and the status footer and
// maps the global keys onto controller actions.
package container

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dropindemo/buildvars"
	"github.com/toeirei/dropindemo/internal/demo"
	"github.com/toeirei/dropindemo/internal/i18n"
	"github.com/toeirei/dropindemo/internal/logging"
	windowtitle "github.com/toeirei/dropindemo/ui/tui/models/helpers/title"
	"github.com/toeirei/dropindemo/ui/tui/models/views/footer"
	"github.com/toeirei/dropindemo/ui/tui/util"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	sourceStyle = lipgloss.NewStyle().Faint(true)
	bodyStyle   = lipgloss.NewStyle().Padding(1, 2)
)

// SettingsChangedMsg asks the container to reload settings and restart the
// payment flow.
type SettingsChangedMsg struct{}

// Config wires the container to the rest of the application.
type Config struct {
	Settings demo.SettingsSource
	API      demo.MerchantAPI
	Factory  demo.SessionFactory

	// LoadSettings re-reads settings on SettingsChangedMsg. When nil the
	// current settings are kept.
	LoadSettings func() (demo.SettingsSource, error)
	// ConfigPath is shown by the settings key; empty when no file is in use.
	ConfigPath string
	// DefaultConfigPath is suggested when ConfigPath is empty.
	DefaultConfigPath string
	// CopyToClipboard defaults to clipboard.WriteAll.
	CopyToClipboard func(string) error
}

type Model struct {
	ctx        context.Context
	config     Config
	controller *demo.Controller
	keys       KeyMap
	footer     *footer.Model
	title      *windowtitle.TitleHandler
	size       util.Size
}

func New(ctx context.Context, config Config) *Model {
	if config.Factory == nil {
		config.Factory = NewFactory()
	}
	if config.CopyToClipboard == nil {
		config.CopyToClipboard = clipboard.WriteAll
	}
	keys := NewKeyMap()
	m := &Model{
		ctx:    ctx,
		config: config,
		keys:   keys,
		footer: footer.New(keys),
		title: windowtitle.NewHandler(
			fmt.Sprintf("%s %s", i18n.T("app.title"), buildvars.VersionOrDefault("dev")), " | "),
	}
	m.footer.SetStatus(i18n.T("status.ready"))
	m.controller = demo.NewController(config.Settings, config.API, config.Factory, m)
	return m
}

// SetStatus implements demo.StatusSink.
func (m *Model) SetStatus(status string) {
	m.footer.SetStatus(status)
}

// Controller exposes the lifecycle controller.
func (m *Model) Controller() *demo.Controller {
	return m.controller
}

// Shutdown ends the running payment flow.
func (m *Model) Shutdown() {
	m.controller.Shutdown()
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.title.Init(), m.reload())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		m.footer.Update(msg)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.footer.ToggleExpanded()
		case key.Matches(msg, m.keys.Reload):
			cmd = m.reload()
		case key.Matches(msg, m.keys.Transact):
			cmd = m.controller.TriggerTransaction(m.ctx)
		case key.Matches(msg, m.keys.Copy):
			m.copyStatus()
		case key.Matches(msg, m.keys.Settings):
			m.showSettings()
		default:
			cmd = m.controller.Update(msg)
		}

	case SettingsChangedMsg:
		cmd = m.settingsChanged()

	default:
		cmd = m.controller.Update(msg)
	}
	return m, tea.Batch(cmd, m.sync())
}

func (m *Model) reload() tea.Cmd {
	return tea.Batch(m.controller.Reload(m.ctx), m.sync())
}

func (m *Model) settingsChanged() tea.Cmd {
	if m.config.LoadSettings != nil {
		settings, err := m.config.LoadSettings()
		if err != nil {
			logging.Errorf("reload settings: %v", err)
			m.SetStatus(i18n.T("status.settings_error", err.Error()))
			return nil
		}
		m.controller.SetSettings(settings)
	}
	logging.Infof("settings changed, reloading")
	return m.reload()
}

func (m *Model) copyStatus() {
	status := m.footer.Status()
	if err := m.config.CopyToClipboard(status); err != nil {
		logging.Warnf("copy to clipboard: %v", err)
		m.SetStatus(i18n.T("status.copy_failed", err.Error()))
		return
	}
	logging.Debugf("copied %q to clipboard", status)
	m.SetStatus(i18n.T("status.copied"))
}

func (m *Model) showSettings() {
	if m.config.ConfigPath != "" {
		m.SetStatus(i18n.T("status.settings_path", m.config.ConfigPath))
		return
	}
	m.SetStatus(i18n.T("status.settings_no_file", m.config.DefaultConfigPath))
}

// sync mirrors controller state into key bindings, footer help and the
// window title.
func (m *Model) sync() tea.Cmd {
	m.keys.Transact.SetEnabled(m.controller.TransactionEnabled())

	session := m.controller.Session()
	if mapper, ok := session.(util.KeyMapper); ok {
		m.footer.SetKeyMap(util.MergeKeyMaps(m.keys, mapper.KeyMap()))
	} else {
		m.footer.SetKeyMap(m.keys)
	}
	if session != nil {
		return m.title.Set(session.Title())
	}
	return m.title.Set("")
}

func (m *Model) header() string {
	left := headerStyle.Render(i18n.T("app.title"))
	src := m.controller.Source()
	if src.Kind == 0 {
		return left
	}
	detail := src.Kind.String()
	if src.Environment != "" {
		detail += " · " + string(src.Environment)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, sourceStyle.Render(detail))
}

func (m *Model) View() string {
	body := m.controller.View()
	if body == "" {
		body = sourceStyle.Render(i18n.T("container.no_session"))
	}
	footerView := m.footer.View()
	bodyHeight := m.size.Height - lipgloss.Height(footerView) - 1
	body = bodyStyle.Render(body)
	if bodyHeight > 0 {
		body = lipgloss.PlaceVertical(bodyHeight, lipgloss.Top, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), body, footerView)
}

var _ tea.Model = (*Model)(nil)
var _ demo.StatusSink = (*Model)(nil)

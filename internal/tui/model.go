// Package tui is the terminal front end for the session engine. It owns no
// protocol state; every frame is rendered from an engine view snapshot and
// every key press becomes an engine command.
package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foxseedlab/emovoice/internal/catalog"
	"github.com/foxseedlab/emovoice/internal/protocol"
)

const (
	defaultWidth = 80
	tickInterval = 100 * time.Millisecond
)

// New returns a tea.Model ready to be mounted into a Program. exportDir is
// where the session log lands when the participant exports it.
func New(engine *protocol.Engine, exportDir string) tea.Model {
	nameInput := textinput.New()
	nameInput.CharLimit = 80
	nameInput.Width = 40

	if exportDir == "" {
		exportDir = "."
	}

	return &model{
		engine:      engine,
		nameInput:   nameInput,
		exportDir:   exportDir,
		width:       defaultWidth,
		mirrorCount: -1,
	}
}

type model struct {
	engine    *protocol.Engine
	nameInput textinput.Model
	exportDir string

	width        int
	ticking      bool
	busy         bool
	infoMessage  string
	errorMessage string
	mirrorCount  int
}

type appliedMsg struct {
	err error
}

type tickMsg time.Time

type exportResultMsg struct {
	path string
	err  error
}

type mirrorResultMsg struct {
	count int
	err   error
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		m.ticking = false
		return m, m.scheduleTick()
	case appliedMsg:
		m.busy = false
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			return m, nil
		}
		m.errorMessage = ""
		v := m.engine.View()
		switch v.Stage {
		case protocol.StagePrompt:
			m.nameInput.Placeholder = copyFor(v.Language).NamePlaceholder
			m.nameInput.Focus()
			return m, textinput.Blink
		case protocol.StageComplete:
			return m, mirrorCmd(m.engine)
		}
		return m, m.scheduleTick()
	case exportResultMsg:
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			return m, nil
		}
		m.errorMessage = ""
		m.infoMessage = msg.path
		return m, nil
	case mirrorResultMsg:
		// Offline runs have nothing mirrored; the completion screen just
		// omits the line.
		if msg.err == nil {
			m.mirrorCount = msg.count
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	v := m.engine.View()
	switch v.Stage {
	case protocol.StagePreview:
		switch key.String() {
		case "l":
			m.toggleLanguage(v.Language)
			return m, nil
		case "enter", " ":
			return m, m.apply(protocol.StartPractice{})
		}
	case protocol.StagePractice:
		if isContinueKey(key) && v.CanContinue {
			return m, m.apply(protocol.Continue{})
		}
	case protocol.StagePracticeComplete:
		switch key.String() {
		case "l":
			m.toggleLanguage(v.Language)
			return m, nil
		case "enter", " ":
			return m, m.apply(protocol.FinishPractice{})
		}
	case protocol.StagePrompt:
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(key)
		if key.Type == tea.KeyEnter {
			name := strings.TrimSpace(m.nameInput.Value())
			return m, tea.Batch(cmd, m.apply(protocol.SubmitIntake{Name: name}))
		}
		return m, cmd
	case protocol.StageEmotionIntro:
		if isContinueKey(key) {
			return m, m.apply(protocol.BeginCategory{})
		}
	case protocol.StageSentence:
		if isContinueKey(key) && v.CanContinue {
			return m, m.apply(protocol.Continue{})
		}
	case protocol.StageComplete:
		switch key.String() {
		case "e":
			return m, exportCmd(m.engine, m.exportDir)
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func isContinueKey(key tea.KeyMsg) bool {
	return key.Type == tea.KeyEnter || key.String() == " "
}

func (m *model) toggleLanguage(current catalog.Language) {
	next := catalog.LanguageJapanese
	if current == catalog.LanguageJapanese {
		next = catalog.LanguageEnglish
	}
	m.engine.SetLanguage(next)
	m.nameInput.Placeholder = copyFor(next).NamePlaceholder
}

// apply runs an engine command off the update loop: stopping a recording
// trial can block briefly on the capture device.
func (m *model) apply(cmd protocol.Command) tea.Cmd {
	m.busy = true
	engine := m.engine
	return func() tea.Msg {
		return appliedMsg{err: engine.Apply(context.Background(), cmd)}
	}
}

// scheduleTick keeps the elapsed timer moving only while a trial is on
// screen; idle stages render without redraw pressure.
func (m *model) scheduleTick() tea.Cmd {
	if m.ticking {
		return nil
	}
	v := m.engine.View()
	if v.Stage != protocol.StageSentence && v.Stage != protocol.StagePractice {
		return nil
	}
	m.ticking = true
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

const mirrorTimeout = 10 * time.Second

func mirrorCmd(engine *protocol.Engine) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		count, err := engine.RemoteMirrorCount(ctx)
		return mirrorResultMsg{count: count, err: err}
	}
}

func exportCmd(engine *protocol.Engine, dir string) tea.Cmd {
	return func() tea.Msg {
		data, err := engine.ExportJSON()
		if err != nil {
			return exportResultMsg{err: err}
		}
		path := filepath.Join(dir, protocol.ExportFilename(time.Now()))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportResultMsg{err: err}
		}
		return exportResultMsg{path: path}
	}
}

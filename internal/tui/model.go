// Package tui is the terminal study mode: the deck's keyboard surface
// rendered with Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mitchellh/go-homedir"
	"github.com/vytor/flashdeck/internal/errors"
	"github.com/vytor/flashdeck/internal/logger"
	"github.com/vytor/flashdeck/internal/models"
	"github.com/vytor/flashdeck/internal/services"
)

type mode int

const (
	modeStudy mode = iota
	modeEditorList
	modeEditorForm
	modeImport
)

const (
	fieldPrompt = iota
	fieldTarget
	fieldTransliteration
)

type importFileMsg struct {
	path string
	data []byte
	err  error
}

type exportedMsg struct {
	path  string
	count int
	err   error
}

// Model is the Bubble Tea model of a study session.
type Model struct {
	ctx    context.Context
	svc    services.DeckService
	labels models.Labels
	keys   keyMap
	ekeys  editorKeyMap

	state models.DeckState
	mode  mode

	// editor
	cursor    int
	editingID int64
	editing   bool
	inputs    []textinput.Model
	focus     int

	importInput textinput.Model
	exportDir   string

	status    string
	statusErr bool

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithExportDir sets where exports are written. It defaults to the
// working directory.
func WithExportDir(dir string) Option {
	return func(m *Model) { m.exportDir = dir }
}

// WithLabels sets the names of the card faces.
func WithLabels(l models.Labels) Option {
	return func(m *Model) { m.labels = l }
}

// New returns a study session over svc.
func New(ctx context.Context, svc services.DeckService, opts ...Option) *Model {
	m := &Model{
		ctx:       ctx,
		svc:       svc,
		labels:    models.DefaultLabels,
		keys:      defaultKeyMap(),
		ekeys:     defaultEditorKeyMap(),
		exportDir: ".",
	}
	for _, opt := range opts {
		opt(m)
	}

	m.inputs = make([]textinput.Model, 3)
	for i, placeholder := range []string{
		"Enter " + m.labels.Prompt + " word/phrase",
		"Enter " + m.labels.Target + " text",
		"Enter " + m.labels.Transliteration,
	} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 200
		m.inputs[i] = ti
	}

	m.importInput = textinput.New()
	m.importInput.Placeholder = "path/to/flashcards.json"
	m.importInput.Prompt = "Import file: "

	m.state = svc.State(ctx)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case importFileMsg:
		m.applyImport(msg)
		return m, nil
	case exportedMsg:
		if msg.err != nil {
			m.setError("Export failed: %v", msg.err)
		} else {
			m.setStatus("Exported %d cards to %s", msg.count, msg.path)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeEditorList:
			return m.updateEditorList(msg)
		case modeEditorForm:
			return m.updateEditorForm(msg)
		case modeImport:
			return m.updateImport(msg)
		default:
			return m.updateStudy(msg)
		}
	}
	return m, nil
}

func (m *Model) updateStudy(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	grid := m.state.View == models.ViewGrid

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.state = m.svc.Previous(m.ctx)
	case key.Matches(msg, m.keys.Next):
		m.state = m.svc.Next(m.ctx)
	case key.Matches(msg, m.keys.Flip):
		if grid {
			if m.state.Current != nil {
				m.state = m.svc.ToggleCardFlip(m.ctx, m.state.Current.ID)
			}
		} else {
			m.state = m.svc.Flip(m.ctx)
		}
	case key.Matches(msg, m.keys.Reveal):
		m.state = m.svc.Reveal(m.ctx)
	case key.Matches(msg, m.keys.Shuffle):
		m.state = m.svc.Shuffle(m.ctx)
	case key.Matches(msg, m.keys.Reset):
		m.state = m.svc.Reset(m.ctx)
	case key.Matches(msg, m.keys.View):
		m.state = m.svc.ToggleView(m.ctx)
	case key.Matches(msg, m.keys.Editor):
		if !m.state.Editor.Open {
			m.state = m.svc.ToggleEditor(m.ctx)
		}
		m.mode = modeEditorList
		m.cursor = min(m.state.Position, max(0, m.state.Total()-1))
	case key.Matches(msg, m.keys.Import):
		m.mode = modeImport
		m.importInput.SetValue("")
		return m, m.importInput.Focus()
	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()
	}
	return m, nil
}

func (m *Model) updateEditorList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := m.state.Total()

	switch {
	case key.Matches(msg, m.ekeys.Close):
		m.state = m.svc.ToggleEditor(m.ctx)
		m.mode = modeStudy
	case key.Matches(msg, m.ekeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.ekeys.Down):
		if m.cursor < total-1 {
			m.cursor++
		}
	case key.Matches(msg, m.ekeys.Add):
		m.editing = false
		draft := m.state.Editor.Draft
		return m, m.openForm(draft)
	case key.Matches(msg, m.ekeys.Edit):
		if total == 0 {
			return m, nil
		}
		card := m.state.Cards[m.cursor]
		if err := m.svc.BeginEdit(m.ctx, card.ID); err != nil {
			m.setError("%s", errorMessage(err))
			return m, nil
		}
		m.state = m.svc.State(m.ctx)
		m.editing = true
		m.editingID = card.ID
		return m, m.openForm(card.Fields())
	case key.Matches(msg, m.ekeys.Delete):
		if total == 0 {
			return m, nil
		}
		card := m.state.Cards[m.cursor]
		if err := m.svc.DeleteCard(m.ctx, card.ID); err != nil {
			m.setError("%s", errorMessage(err))
			return m, nil
		}
		m.state = m.svc.State(m.ctx)
		m.cursor = min(m.cursor, max(0, m.state.Total()-1))
		m.setStatus("Deleted %q", card.PromptText)
	}
	return m, nil
}

func (m *Model) openForm(f models.CardFields) tea.Cmd {
	m.mode = modeEditorForm
	m.inputs[fieldPrompt].SetValue(f.PromptText)
	m.inputs[fieldTarget].SetValue(f.TargetText)
	m.inputs[fieldTransliteration].SetValue(f.Transliteration)
	for i := range m.inputs {
		m.inputs[i].CursorEnd()
	}
	return m.focusField(fieldPrompt)
}

func (m *Model) focusField(i int) tea.Cmd {
	m.focus = i
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	return m.inputs[i].Focus()
}

func (m *Model) formFields() models.CardFields {
	return models.CardFields{
		PromptText:      m.inputs[fieldPrompt].Value(),
		TargetText:      m.inputs[fieldTarget].Value(),
		Transliteration: m.inputs[fieldTransliteration].Value(),
	}
}

func (m *Model) updateEditorForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ekeys.Cancel):
		if m.editing {
			m.state = m.svc.CancelEdit(m.ctx)
		} else {
			m.state = m.svc.SetDraft(m.ctx, m.formFields())
		}
		m.editing = false
		m.mode = modeEditorList
		return m, nil
	case key.Matches(msg, m.ekeys.NextField):
		return m, m.focusField((m.focus + 1) % len(m.inputs))
	case key.Matches(msg, m.ekeys.PrevField):
		return m, m.focusField((m.focus + len(m.inputs) - 1) % len(m.inputs))
	case key.Matches(msg, m.ekeys.Submit):
		m.submitForm()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submitForm saves the form. A blank field keeps the form open.
func (m *Model) submitForm() {
	fields := m.formFields()

	if m.editing {
		updated, err := m.svc.UpdateCard(m.ctx, m.editingID, fields)
		if err != nil {
			m.setError("%s", errorMessage(err))
			return
		}
		m.state = m.svc.State(m.ctx)
		if !updated {
			m.setError("All three fields are required.")
			return
		}
		m.editing = false
		m.mode = modeEditorList
		m.setStatus("Card updated")
		return
	}

	card, err := m.svc.AddCard(m.ctx, fields)
	if err != nil {
		m.setError("%s", errorMessage(err))
		return
	}
	m.state = m.svc.State(m.ctx)
	if card == nil {
		m.setError("All three fields are required.")
		return
	}
	m.mode = modeEditorList
	m.cursor = m.state.Total() - 1
	m.setStatus("Added %q", card.PromptText)
}

func (m *Model) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeStudy
		m.importInput.Blur()
		return m, nil
	case tea.KeyEnter:
		path := m.importInput.Value()
		m.mode = modeStudy
		m.importInput.Blur()
		if path == "" {
			return m, nil
		}
		return m, readImportCmd(path)
	}

	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

func readImportCmd(path string) tea.Cmd {
	return func() tea.Msg {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return importFileMsg{path: path, err: err}
		}
		data, err := os.ReadFile(expanded)
		return importFileMsg{path: expanded, data: data, err: err}
	}
}

func (m *Model) applyImport(msg importFileMsg) {
	log := logger.FromContext(m.ctx).WithPrefix("tui")
	if msg.err != nil {
		log.Warn("failed to read import file: %v", msg.err)
		m.setError("Could not read %s", msg.path)
		return
	}
	n, err := m.svc.Import(m.ctx, msg.data)
	if err != nil {
		m.setError("%s", errorMessage(err))
		return
	}
	m.state = m.svc.State(m.ctx)
	m.setStatus("Successfully imported %d cards!", n)
}

func (m *Model) exportCmd() tea.Cmd {
	svc, ctx, dir := m.svc, m.ctx, m.exportDir
	return func() tea.Msg {
		data, name, err := svc.Export(ctx)
		if err != nil {
			return exportedMsg{err: err}
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportedMsg{err: err}
		}
		return exportedMsg{path: path, count: len(svc.Cards(ctx))}
	}
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *Model) setError(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = true
}

func errorMessage(err error) string {
	if appErr, ok := errors.As(err); ok {
		return appErr.Message
	}
	return err.Error()
}

// Run starts a full-screen study session and blocks until it ends.
func Run(ctx context.Context, svc services.DeckService, opts ...Option) error {
	p := tea.NewProgram(New(ctx, svc, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

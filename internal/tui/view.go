package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/vytor/flashdeck/internal/models"
)

const (
	progressWidth = 30
	gridColumns   = 4
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.labels.Target+" Flashcards") + "\n\n")

	switch m.mode {
	case modeEditorList, modeEditorForm:
		b.WriteString(m.editorView())
	default:
		if m.state.View == models.ViewGrid {
			b.WriteString(m.gridView())
		} else {
			b.WriteString(m.cardView())
		}
	}
	b.WriteString("\n")

	if m.mode == modeImport {
		b.WriteString(m.importInput.View() + "\n")
	}
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status) + "\n")
	}
	b.WriteString(m.helpView())
	return b.String()
}

func (m *Model) cardView() string {
	st := m.state
	if st.Current == nil {
		return labelStyle.Render("No cards yet. Press m to add some.") + "\n"
	}
	c := st.Current

	var face string
	style := cardStyle
	if st.Flipped {
		style = flippedCardStyle
		lines := []string{
			labelStyle.Render(m.labels.Target),
			mainTextStyle.Render(c.TargetText),
		}
		if st.Revealed {
			lines = append(lines, romanStyle.Render(c.Transliteration))
		} else {
			lines = append(lines, labelStyle.Render("t to show "+strings.ToLower(m.labels.Transliteration)))
		}
		face = lipgloss.JoinVertical(lipgloss.Center, lines...)
	} else {
		face = lipgloss.JoinVertical(lipgloss.Center,
			labelStyle.Render(m.labels.Prompt),
			mainTextStyle.Render(c.PromptText),
		)
	}

	return m.progressView() + "\n" + style.Render(face) + "\n"
}

func (m *Model) progressView() string {
	st := m.state
	filled := int(st.ProgressPercent() / 100 * progressWidth)
	bar := progressFull.Render(strings.Repeat("█", filled)) +
		progressEmpty.Render(strings.Repeat("░", progressWidth-filled))
	return fmt.Sprintf("%s %d of %d", bar, st.Position+1, st.Total())
}

func (m *Model) gridView() string {
	st := m.state
	if len(st.Grid) == 0 {
		return labelStyle.Render("No cards yet.") + "\n"
	}

	var rows []string
	var row []string
	for i, g := range st.Grid {
		text := g.PromptText
		if g.Flipped {
			text = g.TargetText + "\n" + romanStyle.Render(g.Transliteration)
		}
		style := gridCardStyle
		if i == st.Position {
			style = gridSelectedStyle
		}
		row = append(row, style.Render(text))
		if len(row) == gridColumns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (m *Model) editorView() string {
	var b strings.Builder
	b.WriteString(mainTextStyle.Render("Manage Cards") + "\n\n")

	if m.mode == modeEditorForm {
		title := "Add New Card"
		if m.editing {
			title = "Edit Card"
		}
		b.WriteString(labelStyle.Render(title) + "\n")
		names := []string{m.labels.Prompt, m.labels.Target, m.labels.Transliteration}
		for i, in := range m.inputs {
			fmt.Fprintf(&b, "%-14s %s\n", names[i]+":", in.View())
		}
		return modalStyle.Render(b.String())
	}

	fmt.Fprintf(&b, "Existing Cards (%d)\n", m.state.Total())
	for i, c := range m.state.Cards {
		line := fmt.Sprintf("%s → %s (%s)", c.PromptText, c.TargetText, c.Transliteration)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return modalStyle.Render(b.String())
}

func (m *Model) helpView() string {
	var bindings []key.Binding
	switch m.mode {
	case modeEditorList:
		bindings = m.ekeys.listHelp()
	case modeEditorForm:
		bindings = m.ekeys.formHelp()
	case modeImport:
		return helpStyle.Render("enter import • esc cancel")
	default:
		bindings = m.keys.studyHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

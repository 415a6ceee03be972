package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashdeck/internal/models"
	"github.com/vytor/flashdeck/internal/repository/memory"
	"github.com/vytor/flashdeck/internal/services"
	"github.com/vytor/flashdeck/internal/testutil"
)

func newTestModel(t *testing.T, opts ...Option) (*Model, services.DeckService) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewCardStore()
	require.NoError(t, store.Save(ctx, testutil.Cards(3)))
	svc := services.NewDeckService(ctx, store)
	return New(ctx, svc, opts...), svc
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		press(m, runes(string(r)))
	}
}

func TestStudyKeys(t *testing.T) {
	m, svc := newTestModel(t)
	ctx := context.Background()

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, svc.State(ctx).Position)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, svc.State(ctx).Flipped)
	assert.Contains(t, m.View(), "target-2")

	press(m, runes("t"))
	assert.True(t, svc.State(ctx).Revealed)
	assert.Contains(t, m.View(), "translit-2")

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	st := svc.State(ctx)
	assert.Equal(t, 0, st.Position)
	assert.False(t, st.Flipped)

	press(m, runes("s"))
	assert.ElementsMatch(t, []int{0, 1, 2}, svc.State(ctx).Order)

	press(m, runes("r"))
	assert.Equal(t, []int{0, 1, 2}, svc.State(ctx).Order)
	assert.Contains(t, m.View(), "1 of 3")
}

func TestGridFlipsHighlightedCard(t *testing.T) {
	m, svc := newTestModel(t)
	ctx := context.Background()

	press(m, runes("v"), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	st := svc.State(ctx)
	assert.Equal(t, models.ViewGrid, st.View)
	assert.False(t, st.Grid[0].Flipped)
	assert.True(t, st.Grid[1].Flipped)
	assert.Contains(t, m.View(), "target-2")
}

func TestEditorSuppressesStudyKeys(t *testing.T) {
	m, svc := newTestModel(t)
	ctx := context.Background()

	press(m, runes("m"))
	require.True(t, svc.State(ctx).Editor.Open)

	press(m, runes("s"), tea.KeyMsg{Type: tea.KeyRight}, runes("v"))
	st := svc.State(ctx)
	assert.Equal(t, []int{0, 1, 2}, st.Order)
	assert.Equal(t, 0, st.Position)
	assert.Equal(t, models.ViewSingle, st.View)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, svc.State(ctx).Editor.Open)
	assert.Equal(t, modeStudy, m.mode)
}

func TestEditorAddCard(t *testing.T) {
	m, svc := newTestModel(t)
	ctx := context.Background()

	press(m, runes("m"), runes("a"))
	require.Equal(t, modeEditorForm, m.mode)

	typeText(m, "Bread")
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "عيش")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeEditorForm, m.mode, "blank transliteration keeps the form open")
	assert.True(t, m.statusErr)
	assert.Len(t, svc.Cards(ctx), 3)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "Eish")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	cards := svc.Cards(ctx)
	require.Len(t, cards, 4)
	assert.Equal(t, models.Card{ID: 4, PromptText: "Bread", TargetText: "عيش", Transliteration: "Eish"}, cards[3])
	assert.Equal(t, modeEditorList, m.mode)
	assert.Equal(t, 3, m.cursor)
}

func TestEditorEditAndDelete(t *testing.T) {
	m, svc := newTestModel(t)
	ctx := context.Background()

	press(m, runes("m"), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeEditorForm, m.mode)
	require.NotNil(t, svc.State(ctx).Editor.Editing)

	typeText(m, "!")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "prompt-2!", svc.Cards(ctx)[1].PromptText)
	assert.Nil(t, svc.State(ctx).Editor.Editing)

	press(m, runes("d"))
	cards := svc.Cards(ctx)
	require.Len(t, cards, 2)
	assert.Equal(t, int64(3), cards[1].ID)
}

func TestImport(t *testing.T) {
	m, svc := newTestModel(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 9, "english": "a", "arabic": "b", "romanization": "c"}]`), 0o600))

	press(m, runes("i"))
	require.Equal(t, modeImport, m.mode)
	typeText(m, path)
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	press(m, cmd())

	assert.Equal(t, "Successfully imported 1 cards!", m.status)
	assert.Equal(t, []models.Card{{ID: 9, PromptText: "a", TargetText: "b", Transliteration: "c"}}, svc.Cards(ctx))
}

func TestImport_InvalidFileKeepsDeck(t *testing.T) {
	m, svc := newTestModel(t)

	press(m, importFileMsg{path: "x.json", data: []byte(`{"a": 1}`)})

	assert.True(t, m.statusErr)
	assert.Equal(t, "Invalid file format. Expected an array of card objects.", m.status)
	assert.Len(t, svc.Cards(context.Background()), 3)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModel(t, WithExportDir(dir))

	cmd := press(m, runes("e"))
	require.NotNil(t, cmd)
	press(m, cmd())

	require.False(t, m.statusErr, m.status)
	matches, err := filepath.Glob(filepath.Join(dir, "flashcards-*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

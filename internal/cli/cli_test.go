package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashdeck/internal/cardfile"
	"github.com/vytor/flashdeck/internal/config"
	"github.com/vytor/flashdeck/internal/sampledeck"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Addr:                 ":0",
		Storage:              config.StorageFile,
		DBPath:               filepath.Join(t.TempDir(), "deck.db"),
		DeckFile:             filepath.Join(t.TempDir(), "deck.json"),
		LogLevel:             "ERROR",
		PromptLabel:          "English",
		TargetLabel:          "Arabic",
		TransliterationLabel: "Romanization",
	}
}

func execute(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(cfg)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestList_DefaultDeck(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "Ahlan")
	assert.Contains(t, out, "41 cards, saved")

	_, err = os.Stat(cfg.DeckFile)
	assert.NoError(t, err, "the default deck is saved on first use")
}

func TestImportThenList(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": 3, "english": "Cat", "arabic": "قطة", "romanization": "Otta"},
		{"id": 4, "english": "Dog"}
	]`), 0o600))

	out, err := execute(t, cfg, "import", path)
	require.NoError(t, err)
	assert.Equal(t, "Successfully imported 1 cards!\n", out)

	out, err = execute(t, cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Cat")
	assert.NotContains(t, out, "Dog")
	assert.Contains(t, out, "1 cards")
}

func TestImport_Rejected(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"english": "Dog"}]`), 0o600))

	_, err := execute(t, cfg, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No valid cards found")
}

func TestImport_MissingFile(t *testing.T) {
	_, err := execute(t, testConfig(t), "import", filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "out.json")

	out, err := execute(t, cfg, "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 41 cards to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	cards, err := cardfile.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, sampledeck.Cards(), cards)
}

func TestExport_Stdout(t *testing.T) {
	out, err := execute(t, testConfig(t), "export", "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"english": "Hello"`)
}

func TestGlobalFlags(t *testing.T) {
	cfg := testConfig(t)
	dbPath := filepath.Join(t.TempDir(), "flag.db")

	_, err := execute(t, cfg, "--storage", "SQLITE", "--db", dbPath, "list")
	require.NoError(t, err)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestInvalidStorage(t *testing.T) {
	_, err := execute(t, testConfig(t), "--storage", "redis", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE must be one of")
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termcaps/internal/config"
	"github.com/srlehn/termcaps/internal/testutil"
	"github.com/srlehn/termcaps/terminals"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, `termcaps`, `config.yaml`)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadFromXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	p := writeConfig(t, dir, "program: wezterm\noverrides:\n  sixel: false\n  screen_chunk_limit: 512\n")
	cfg, err := config.Load(testutil.Env(`XDG_CONFIG_HOME`, dir))
	require.NoError(t, err)
	assert.Equal(t, p, cfg.File)
	prog, ok, err := cfg.ProgramOverride()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, terminals.WezTerm, prog)
	require.NotNil(t, cfg.Overrides.Sixel)
	assert.False(t, *cfg.Overrides.Sixel)
	require.NotNil(t, cfg.Overrides.ScreenChunkLimit)
	assert.Equal(t, 512, *cfg.Overrides.ScreenChunkLimit)
	assert.Nil(t, cfg.Overrides.TrueColor)
}

func TestLoadMissingDefault(t *testing.T) {
	cfg, err := config.Load(testutil.Env(`XDG_CONFIG_HOME`, t.TempDir()))
	require.NoError(t, err)
	assert.Empty(t, cfg.File)
	assert.True(t, cfg.Overrides.IsEmpty())
	_, ok, err := cfg.ProgramOverride()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadMissingExplicit(t *testing.T) {
	_, err := config.Load(testutil.Env(`TERMCAPS_CONFIG`, filepath.Join(t.TempDir(), `nope.yaml`)))
	assert.Error(t, err)
}

func TestEnvProgramWins(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "program: wezterm\n")
	cfg, err := config.Load(testutil.Env(`XDG_CONFIG_HOME`, dir, `TERMCAPS_PROGRAM`, `Kitty`))
	require.NoError(t, err)
	prog, ok, err := cfg.ProgramOverride()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, terminals.Kitty, prog)
}

func TestLoadRejectsBadInput(t *testing.T) {
	for name, content := range map[string]string{
		`unknown key`:     "colour: true\n",
		`unknown program`: "program: hyper\n",
		`bad overlay`:     "overrides:\n  width_method: ascii\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, content)
			_, err := config.Load(testutil.Env(`XDG_CONFIG_HOME`, dir))
			assert.Error(t, err)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, `/x/termcaps/config.yaml`, config.DefaultPath(testutil.Env(`XDG_CONFIG_HOME`, `/x`)))
	assert.Equal(t, `/etc/tc.yaml`, config.DefaultPath(testutil.Env(`TERMCAPS_CONFIG`, `/etc/tc.yaml`, `XDG_CONFIG_HOME`, `/x`)))
}

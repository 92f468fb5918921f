package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "billboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.InDelta(t, 1.0, cfg.Cell().ToMM(), 1e-9)
	assert.InDelta(t, 5.0, cfg.Margin().ToMM(), 1e-9)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
workers: 4
logging:
  level: debug
output:
  format: "#${case} -> ${font}"
render:
  cell: 0.5cm
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "#${case} -> ${font}", cfg.Output.Format)
	assert.Equal(t, Default().Output.ErrorFormat, cfg.Output.ErrorFormat)
	assert.InDelta(t, 5.0, cfg.Cell().ToMM(), 1e-9)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BILLBOARD_WORKERS", "8")
	t.Setenv("BILLBOARD_LOG_LEVEL", "info")
	t.Setenv("BILLBOARD_FONT", "/tmp/font.ttf")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/tmp/font.ttf", cfg.Render.Font)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative workers":     "workers: -1\n",
		"unknown level":        "logging:\n  level: loud\n",
		"unknown placeholder":  "output:\n  format: \"${size}\"\n",
		"bad error template":   "output:\n  error_format: \"${font}\"\n",
		"zero cell":            "render:\n  cell: 0mm\n",
		"bad margin":           "render:\n  margin: wide\n",
		"malformed yaml":       "workers: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_BadWorkersEnv(t *testing.T) {
	t.Setenv("BILLBOARD_WORKERS", "many")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRead_DefersValidation(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: loud\n")

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "loud", cfg.Logging.Level)
	assert.Error(t, cfg.Validate())

	cfg.Logging.Level = "debug"
	assert.NoError(t, cfg.Validate())

	_, err = Load(path)
	assert.Error(t, err)
}

func TestRead_StillFailsOnUnreadableInput(t *testing.T) {
	_, err := Read(writeConfig(t, "workers: [\n"))
	assert.Error(t, err)

	t.Setenv("BILLBOARD_WORKERS", "many")
	_, err = Read("")
	assert.Error(t, err)
}

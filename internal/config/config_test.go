package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"TASKQUARE_THEME", "TASKQUARE_GROUP", "TASKQUARE_LOG_FILE", "TASKQUARE_LOG_LEVEL", "TASKQUARE_EXPORT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "taskquare", FileName)

	in := &Config{Theme: "neon", Group: true, LogFile: "/tmp/tq.log", LogLevel: "debug", ExportPath: "out.json"}
	require.NoError(t, in.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("theme: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_Validation(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		theme   string
	}{
		{"uppercase theme normalised", "theme: MONO\n", "", "mono"},
		{"empty theme defaults", "theme: \"\"\n", "", "classic"},
		{"unknown theme", "theme: pastel\n", "unknown theme", ""},
		{"unknown level", "log_level: loud\n", "unknown log level", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)
			require.NoError(t, err)
			err = cfg.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.theme, cfg.Theme)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env beats file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("theme: neon\ngroup: false\n"), 0o600))

		t.Setenv("TASKQUARE_THEME", "mono")
		t.Setenv("TASKQUARE_GROUP", "true")
		t.Setenv("TASKQUARE_EXPORT", "/tmp/x.json")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "mono", cfg.Theme)
		assert.True(t, cfg.Group)
		assert.Equal(t, "/tmp/x.json", cfg.ExportPath)
	})

	t.Run("bad env theme can still be overridden", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TASKQUARE_THEME", "pastel")

		cfg, err := Load(filepath.Join(t.TempDir(), FileName))
		require.NoError(t, err)
		assert.Equal(t, "pastel", cfg.Theme)
		require.Error(t, cfg.Validate())

		cfg.Theme = "Neon" // as -theme would
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "neon", cfg.Theme)
	})

	t.Run("unparsable bool ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TASKQUARE_GROUP", "sometimes")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.False(t, cfg.Group)
	})
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", AppName, FileName), DefaultPath())
}

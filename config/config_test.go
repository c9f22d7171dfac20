package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"exoplayerlcevc/internal/logger"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir())
	Init()

	s := Current()
	assert.Equal(t, "https://github.com/google/ExoPlayer.git", s.RemoteURL)
	assert.Equal(t, "r", s.TagPrefix)
	assert.Zero(t, s.RemoteTimeout)
	assert.Equal(t, "exec", s.GitBackend)
	assert.Equal(t, "libraries/decoder_lcevc", s.DecoderSource)
	assert.Equal(t, []string{".cxx", "buildout"}, s.DecoderExclude)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "auto", s.Progress)
}

func TestCurrent_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir())
	t.Setenv("EXOLCEVC_GIT_BACKEND", "GO-GIT")
	t.Setenv("EXOLCEVC_REMOTE_TIMEOUT", "90s")
	t.Setenv("EXOLCEVC_UI_PROGRESS", "never")
	Init()

	s := Current()
	assert.Equal(t, "go-git", s.GitBackend)
	assert.Equal(t, 90*time.Second, s.RemoteTimeout)
	assert.Equal(t, "never", s.Progress)
}

func TestCurrent_ConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	chdir(t, dir)

	yaml := "remote:\n  url: https://example.com/ExoPlayer.git\ndecoder:\n  source: /opt/lcevc\n  exclude: [build]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	Init()

	s := Current()
	assert.Equal(t, "https://example.com/ExoPlayer.git", s.RemoteURL)
	assert.Equal(t, "/opt/lcevc", s.DecoderSource)
	assert.Equal(t, []string{"build"}, s.DecoderExclude)
	assert.Equal(t, "r", s.TagPrefix)
}

func TestInit_ReportsMissingConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir())

	var buf bytes.Buffer
	logger.Setup(&buf, "info")
	t.Cleanup(func() { logger.Setup(os.Stderr, "info") })

	Init()
	assert.Contains(t, buf.String(), "No config file found")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

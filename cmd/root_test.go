package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"exoplayerlcevc/config"
	"exoplayerlcevc/internal/logger"
	"exoplayerlcevc/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPipeline(t *testing.T, err error) *[]pipeline.Options {
	t.Helper()
	var calls []pipeline.Options
	prev := runPipeline
	runPipeline = func(_ context.Context, _ config.Settings, opts pipeline.Options) error {
		calls = append(calls, opts)
		return err
	}
	t.Cleanup(func() { runPipeline = prev })
	return &calls
}

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_MissingFlagsHalt(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"none", nil},
		{"no location", []string{"--exoPlayerVersion", "2.18.1"}},
		{"no version", []string{"--location", "/tmp/exo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := stubPipeline(t, nil)

			out, err := execute(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "required flag")
			assert.Contains(t, out, "Usage:")
			assert.Empty(t, *calls)
		})
	}
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	calls := stubPipeline(t, nil)

	_, err := execute("--exoPlayerVersion", "2.18.1", "--location", "/tmp/exo", "extra")
	require.Error(t, err)
	assert.Empty(t, *calls)
}

func TestRoot_PassesFlagsToPipeline(t *testing.T) {
	calls := stubPipeline(t, nil)
	config.Init()

	_, err := execute("--exoPlayerVersion", "2.18.1", "--location", "/tmp/exo")
	require.NoError(t, err)
	require.Len(t, *calls, 1)

	opts := (*calls)[0]
	assert.Equal(t, "2.18.1", opts.Version)
	assert.Equal(t, "/tmp/exo", opts.Location)
	assert.Equal(t, "https://github.com/google/ExoPlayer.git", opts.RemoteURL)
	assert.Equal(t, "r", opts.TagPrefix)
	assert.Equal(t, "libraries/decoder_lcevc", opts.DecoderSource)
	assert.Equal(t, []string{".cxx", "buildout"}, opts.DecoderExclude)
}

func TestRoot_PipelineErrorSkipsUsage(t *testing.T) {
	boom := errors.New("boom")
	stubPipeline(t, boom)
	config.Init()

	out, err := execute("--exoPlayerVersion", "2.18.1", "--location", "/tmp/exo")
	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, out, "Usage:")
}

func TestRoot_UnknownBackendIsReported(t *testing.T) {
	t.Setenv("EXOLCEVC_GIT_BACKEND", "svn")
	t.Setenv("EXOLCEVC_UI_PROGRESS", "never")
	t.Cleanup(func() { logger.Setup(os.Stderr, "info") })
	config.Init()

	out, err := execute("--exoPlayerVersion", "2.18.1", "--location", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, out, "unknown git backend")
	assert.Contains(t, out, "svn")
	assert.NotContains(t, out, "Usage:")
}

func TestRoot_PipelineErrorIsLogged(t *testing.T) {
	stubPipeline(t, errors.New("could not find snippet"))
	t.Cleanup(func() { logger.Setup(os.Stderr, "info") })
	config.Init()

	out, err := execute("--exoPlayerVersion", "2.18.1", "--location", "/tmp/exo")
	require.Error(t, err)
	assert.Contains(t, out, "could not find snippet")
}

func TestUseProgressView(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, useProgressView("always", f))
	assert.False(t, useProgressView("never", f))
	assert.False(t, useProgressView("auto", f), "a regular file is not a terminal")
}

package releases

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"exoplayerlcevc/internal/gitcli/gitclitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends() map[string]Source {
	return map[string]Source{
		BackendExec:  NewGitSource(nil),
		BackendGoGit: NewGoGitSource(nil),
	}
}

func TestBackends_ListTags(t *testing.T) {
	url := gitclitest.Repo(t)

	for name, src := range backends() {
		t.Run(name, func(t *testing.T) {
			tags, err := src.ListTags(context.Background(), url)
			require.NoError(t, err)
			assert.Equal(t, []string{"r2.17.1", "r2.18.1", "r2.18.2"}, tags)
		})
	}
}

func TestBackends_CloneAnnotatedTag(t *testing.T) {
	url := gitclitest.Repo(t)

	for name, src := range backends() {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, src.Clone(context.Background(), url, "r2.18.1", dir))

			data, err := os.ReadFile(filepath.Join(dir, gitclitest.VersionFile))
			require.NoError(t, err)
			assert.Equal(t, "2.18.1\n", string(data))
			assert.Equal(t, 1, gitclitest.ShallowCommits(t, dir))

			tags, err := src.HeadTags(context.Background(), dir)
			require.NoError(t, err)
			assert.Equal(t, []string{"r2.18.1"}, tags)
		})
	}
}

func TestBackends_CloneLightweightTag(t *testing.T) {
	url := gitclitest.Repo(t)

	for name, src := range backends() {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, src.Clone(context.Background(), url, "r2.18.2", dir))

			data, err := os.ReadFile(filepath.Join(dir, gitclitest.VersionFile))
			require.NoError(t, err)
			assert.Equal(t, "2.18.2\n", string(data))
			assert.Equal(t, 1, gitclitest.ShallowCommits(t, dir))
		})
	}
}

func TestBackends_CloneUnknownTag(t *testing.T) {
	url := gitclitest.Repo(t)

	for name, src := range backends() {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.Error(t, src.Clone(context.Background(), url, "r9.9.9", dir))
			assert.NoFileExists(t, filepath.Join(dir, gitclitest.VersionFile))
		})
	}
}

func TestBackends_HeadTagsAgreeOnExecClone(t *testing.T) {
	url := gitclitest.Repo(t)
	dir := t.TempDir()
	require.NoError(t, NewGitSource(nil).Clone(context.Background(), url, "r2.17.1", dir))

	for name, src := range backends() {
		t.Run(name, func(t *testing.T) {
			tags, err := src.HeadTags(context.Background(), dir)
			require.NoError(t, err)
			assert.Equal(t, []string{"r2.17.1"}, tags)
		})
	}
}

package gitcli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"exoplayerlcevc/internal/gitcli/gitclitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLsRemote(t *testing.T) {
	out := []byte("" +
		"1f0e8c3a\trefs/tags/r2.18.1\n" +
		"9b1d2e4f\trefs/tags/r2.18.1^{}\n" +
		"aa00bb11\trefs/tags/r2.17.0\n" +
		"cc22dd33\trefs/heads/release-v2\n" +
		"malformed-line\n" +
		"\n")

	tags, err := ParseLsRemote(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"r2.17.0", "r2.18.1"}, tags)
}

func TestParseLsRemote_Empty(t *testing.T) {
	tags, err := ParseLsRemote(nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestListTags(t *testing.T) {
	url := gitclitest.Repo(t)

	tags, err := ListTags(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, []string{"r2.17.1", "r2.18.1", "r2.18.2"}, tags)
}

func TestListTags_BadRemote(t *testing.T) {
	gitclitest.Repo(t)

	_, err := ListTags(context.Background(), "file://"+filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git ls-remote failed")
}

func TestClone_ShallowAtTag(t *testing.T) {
	url := gitclitest.Repo(t)
	dir := t.TempDir()

	require.NoError(t, Clone(context.Background(), url, "r2.18.1", dir, nil))

	data, err := os.ReadFile(filepath.Join(dir, gitclitest.VersionFile))
	require.NoError(t, err)
	assert.Equal(t, "2.18.1\n", string(data))

	assert.Equal(t, "1", gitclitest.Git(t, dir, "rev-list", "--count", "HEAD"))
	assert.Equal(t, 1, gitclitest.ShallowCommits(t, dir))

	tags, err := HeadTags(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"r2.18.1"}, tags)
}

func TestClone_UnknownTag(t *testing.T) {
	url := gitclitest.Repo(t)
	dir := t.TempDir()

	err := Clone(context.Background(), url, "r9.9.9", dir, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "r9.9.9")
	assert.NoFileExists(t, filepath.Join(dir, gitclitest.VersionFile))
}

func TestHeadTags_NotARepository(t *testing.T) {
	gitclitest.Repo(t)

	_, err := HeadTags(context.Background(), t.TempDir())
	require.Error(t, err)
}

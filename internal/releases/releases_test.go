package releases

import (
	"context"
	"errors"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	tags    []string
	listErr error
}

func (f fakeSource) ListTags(context.Context, string) ([]string, error) {
	return f.tags, f.listErr
}

func (f fakeSource) Clone(context.Context, string, string, string) error {
	return errors.New("unexpected clone")
}

func (f fakeSource) HeadTags(context.Context, string) ([]string, error) {
	return nil, errors.New("unexpected checkout inspection")
}

const remote = "https://example.invalid/ExoPlayer.git"

func TestResolveTag_ExactMatch(t *testing.T) {
	src := fakeSource{tags: []string{"r2.18.1", "r2.18.10", "r2.18.1-dev"}}

	tag, err := ResolveTag(context.Background(), src, remote, "r", "2.18.1")
	require.NoError(t, err)
	assert.Equal(t, "r2.18.1", tag)

	tag, err = ResolveTag(context.Background(), src, remote, "r", "r2.18.10")
	require.NoError(t, err)
	assert.Equal(t, "r2.18.10", tag)
}

func TestResolveTag_NotFound(t *testing.T) {
	src := fakeSource{tags: []string{"r2.17.0", "r2.18.0", "r2.18.2"}}

	_, err := ResolveTag(context.Background(), src, remote, "r", "2.18")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTagNotFound)
	assert.Contains(t, err.Error(), "r2.18 in "+remote)
	assert.Contains(t, err.Error(), "newest: r2.18.2, r2.18.0, r2.17.0")
}

func TestResolveTag_NotFoundWithoutHint(t *testing.T) {
	_, err := ResolveTag(context.Background(), fakeSource{}, remote, "r", "2.18.1")
	require.ErrorIs(t, err, ErrTagNotFound)
	assert.NotContains(t, err.Error(), "newest")
}

func TestResolveTag_ListError(t *testing.T) {
	boom := errors.New("network unreachable")

	_, err := ResolveTag(context.Background(), fakeSource{listErr: boom}, remote, "r", "2.18.1")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrTagNotFound)
}

func TestTagNames(t *testing.T) {
	refs := []*plumbing.Reference{
		plumbing.NewHashReference("refs/tags/r2.18.1", plumbing.ZeroHash),
		plumbing.NewHashReference("refs/tags/r2.18.1^{}", plumbing.ZeroHash),
		plumbing.NewHashReference("refs/tags/r2.17.0", plumbing.ZeroHash),
		plumbing.NewHashReference("refs/heads/release-v2", plumbing.ZeroHash),
		plumbing.NewSymbolicReference(plumbing.HEAD, "refs/heads/release-v2"),
	}

	assert.Equal(t, []string{"r2.17.0", "r2.18.1"}, tagNames(refs))
}

func TestNewSource(t *testing.T) {
	for _, backend := range []string{"", BackendExec, BackendGoGit} {
		src, err := NewSource(backend, nil)
		require.NoError(t, err, backend)
		assert.NotNil(t, src)
	}

	_, err := NewSource("svn", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"svn"`)
}

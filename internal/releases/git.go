package releases

import (
	"context"
	"io"

	"exoplayerlcevc/internal/gitcli"
)

type gitSource struct {
	progress io.Writer
}

// NewGitSource returns a Source backed by the git binary (see internal/gitcli).
func NewGitSource(progress io.Writer) Source {
	return gitSource{progress: progress}
}

func (s gitSource) ListTags(ctx context.Context, remoteURL string) ([]string, error) {
	return gitcli.ListTags(ctx, remoteURL)
}

func (s gitSource) Clone(ctx context.Context, remoteURL, tag, dir string) error {
	return gitcli.Clone(ctx, remoteURL, tag, dir, s.progress)
}

func (s gitSource) HeadTags(ctx context.Context, dir string) ([]string, error) {
	return gitcli.HeadTags(ctx, dir)
}

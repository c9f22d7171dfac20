package releases

import (
	"context"
	"fmt"
	"io"
)

// Source abstracts the two remote operations, tag listing and a shallow clone
// of one tag, plus HeadTags, which reports the tags pointing at HEAD of a local
// checkout.
type Source interface {
	ListTags(ctx context.Context, remoteURL string) ([]string, error)
	Clone(ctx context.Context, remoteURL, tag, dir string) error
	HeadTags(ctx context.Context, dir string) ([]string, error)
}

// Backend names accepted by NewSource.
const (
	BackendExec  = "exec"
	BackendGoGit = "go-git"
)

// NewSource returns the Source for backend. Clone progress is written to progress
// when it is non-nil.
func NewSource(backend string, progress io.Writer) (Source, error) {
	switch backend {
	case "", BackendExec:
		return NewGitSource(progress), nil
	case BackendGoGit:
		return NewGoGitSource(progress), nil
	default:
		return nil, fmt.Errorf("unknown git backend %q (want %q or %q)", backend, BackendExec, BackendGoGit)
	}
}

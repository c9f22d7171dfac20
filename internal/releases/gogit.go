package releases

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
)

type goGitSource struct {
	progress io.Writer
}

// NewGoGitSource returns a Source implemented in pure Go with go-git; no git
// binary is needed.
func NewGoGitSource(progress io.Writer) Source {
	return goGitSource{progress: progress}
}

func (s goGitSource) ListTags(ctx context.Context, remoteURL string) ([]string, error) {
	remote := git.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: []string{remoteURL},
	})

	refs, err := remote.ListContext(ctx, &git.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list remote refs: %w", err)
	}

	return tagNames(refs), nil
}

func tagNames(refs []*plumbing.Reference) []string {
	seen := make(map[string]struct{})
	for _, ref := range refs {
		if !ref.Name().IsTag() {
			continue
		}
		tag := strings.TrimSuffix(ref.Name().Short(), "^{}")
		if tag == "" {
			continue
		}
		seen[tag] = struct{}{}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func (s goGitSource) Clone(ctx context.Context, remoteURL, tag, dir string) error {
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:           remoteURL,
		ReferenceName: plumbing.NewTagReferenceName(tag),
		SingleBranch:  true,
		Depth:         1,
		Tags:          git.NoTags,
		Progress:      s.progress,
	})
	if err != nil {
		return fmt.Errorf("go-git clone %s@%s: %w", remoteURL, tag, err)
	}
	return nil
}

func (s goGitSource) HeadTags(_ context.Context, dir string) ([]string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dir, err)
	}
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD of %s: %w", dir, err)
	}

	refs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags of %s: %w", dir, err)
	}

	var tags []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		hash := ref.Hash()
		// Annotated tags point at a tag object; peel it to its commit.
		if tag, err := repo.TagObject(hash); err == nil {
			commit, err := tag.Commit()
			if err != nil {
				return nil
			}
			hash = commit.Hash
		}
		if hash == head.Hash() {
			tags = append(tags, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list tags of %s: %w", dir, err)
	}

	sort.Strings(tags)
	return tags, nil
}

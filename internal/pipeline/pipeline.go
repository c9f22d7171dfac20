// Package pipeline runs the resolve, clone and patch sequence for one ExoPlayer release.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"exoplayerlcevc/internal/lcevc"
	"exoplayerlcevc/internal/patch"
	"exoplayerlcevc/internal/releases"
	"exoplayerlcevc/internal/version"
)

var (
	ErrNoVersion            = errors.New("no ExoPlayer version provided")
	ErrLocationMissing      = errors.New("location does not exist")
	ErrDecoderSourceMissing = errors.New("decoder source does not exist")
	ErrCheckoutMismatch     = errors.New("existing checkout is not at the requested tag")
)

// Options is the configuration of one run.
type Options struct {
	Version        string
	Location       string
	RemoteURL      string
	TagPrefix      string
	DecoderSource  string
	DecoderExclude []string
}

// check validates everything that can be validated without the network.
func (o Options) check() error {
	if strings.TrimSpace(o.Version) == "" {
		return ErrNoVersion
	}
	if !isDir(o.Location) {
		return fmt.Errorf("%w: %s", ErrLocationMissing, o.Location)
	}
	if !isDir(o.DecoderSource) {
		return fmt.Errorf("%w: %s", ErrDecoderSourceMissing, o.DecoderSource)
	}
	return nil
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isGitCheckout reports whether dir already holds a git working tree.
func isGitCheckout(dir string) bool {
	return isDir(filepath.Join(dir, ".git"))
}

// Pipeline resolves, clones and patches. The zero value is not usable; call New.
type Pipeline struct {
	src    releases.Source
	rules  patch.Rules
	notify Notifier
}

// New returns a Pipeline using src for remote access and rules for the
// package-renaming passes. notify may be nil.
func New(src releases.Source, rules patch.Rules, notify Notifier) *Pipeline {
	if notify == nil {
		notify = func(Event) {}
	}
	return &Pipeline{src: src, rules: rules, notify: notify}
}

// Run executes the whole sequence. It stops at the first error and leaves
// whatever was already applied in place.
func (p *Pipeline) Run(ctx context.Context, opts Options) error {
	if err := opts.check(); err != nil {
		return err
	}

	var tag string
	err := p.step("resolve "+version.TagName(opts.TagPrefix, opts.Version), func() (string, error) {
		var err error
		tag, err = releases.ResolveTag(ctx, p.src, opts.RemoteURL, opts.TagPrefix, opts.Version)
		return tag, err
	})
	if err != nil {
		return err
	}

	err = p.step("clone "+tag, func() (string, error) {
		if isGitCheckout(opts.Location) {
			return checkExisting(ctx, p.src, opts.Location, tag)
		}
		if err := p.src.Clone(ctx, opts.RemoteURL, tag, opts.Location); err != nil {
			return "", err
		}
		return opts.Location, nil
	})
	if err != nil {
		return err
	}

	for _, op := range lcevc.Plan(opts.Location, opts.DecoderSource, opts.DecoderExclude, p.rules) {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := p.step(op.Name(), func() (string, error) {
			res, err := op.Apply()
			if err != nil {
				return "", err
			}
			return describe(res), nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// checkExisting accepts a checkout left by an earlier run only when its HEAD
// is the resolved tag.
func checkExisting(ctx context.Context, src releases.Source, dir, tag string) (string, error) {
	tags, err := src.HeadTags(ctx, dir)
	if err != nil {
		return "", fmt.Errorf("inspect existing checkout: %w", err)
	}
	if !slices.Contains(tags, tag) {
		at := "no tag"
		if len(tags) > 0 {
			at = strings.Join(tags, ", ")
		}
		return "", fmt.Errorf("%w: %s is at %s, want %s", ErrCheckoutMismatch, dir, at, tag)
	}
	return "existing checkout of " + tag + ", not cloned", nil
}

func (p *Pipeline) step(name string, fn func() (string, error)) error {
	p.notify(Event{Step: name, State: Started})

	detail, err := fn()
	if err != nil {
		p.notify(Event{Step: name, State: Failed, Err: err})
		return fmt.Errorf("%s: %w", name, err)
	}

	p.notify(Event{Step: name, State: Done, Detail: detail})
	return nil
}

func describe(res patch.Result) string {
	if res.Detail == "" {
		return res.Status.String()
	}
	return res.Status.String() + ", " + res.Detail
}

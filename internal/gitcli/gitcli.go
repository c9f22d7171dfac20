package gitcli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sort"
	"strings"
)

// Binary is the git executable looked up on PATH.
var Binary = "git"

// ParseLsRemote extracts tag names from `git ls-remote --tags` output.
// Annotated tag dereferences ("^{}") are stripped; the result is de-duplicated
// and sorted.
func ParseLsRemote(out []byte) ([]string, error) {
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}

		ref := fields[1]
		const prefix = "refs/tags/"
		if !strings.HasPrefix(ref, prefix) {
			continue
		}

		tag := strings.TrimSuffix(strings.TrimPrefix(ref, prefix), "^{}")
		if tag == "" {
			continue
		}
		seen[tag] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan git output: %w", err)
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	return tags, nil
}

// ListTags retrieves all tag names of remoteURL by executing:
//
//	git ls-remote --tags <remoteURL>
func ListTags(ctx context.Context, remoteURL string) ([]string, error) {
	cmd := exec.CommandContext(ctx, Binary, "ls-remote", "--tags", remoteURL)

	out, err := cmd.Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return nil, fmt.Errorf("git ls-remote failed: %w; stderr=%s", err, strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("git ls-remote failed: %w", err)
	}

	return ParseLsRemote(out)
}

// Clone makes a shallow clone of a single tag into dir:
//
//	git clone --depth 1 --single-branch --branch <tag> <remoteURL> <dir>
//
// git's progress output goes to progress when it is non-nil. Otherwise it is
// captured and attached to the returned error.
func Clone(ctx context.Context, remoteURL, tag, dir string, progress io.Writer) error {
	cmd := exec.CommandContext(ctx, Binary,
		"clone", "--depth", "1", "--single-branch", "--branch", tag, remoteURL, dir)

	var stderr bytes.Buffer
	if progress != nil {
		cmd.Stdout = progress
		cmd.Stderr = io.MultiWriter(progress, &stderr)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git clone failed: %w; stderr=%s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// HeadTags lists the tags pointing at HEAD of the checkout in dir:
//
//	git -C <dir> tag --points-at HEAD
func HeadTags(ctx context.Context, dir string) ([]string, error) {
	cmd := exec.CommandContext(ctx, Binary, "-C", dir, "tag", "--points-at", "HEAD")

	out, err := cmd.Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return nil, fmt.Errorf("git tag failed: %w; stderr=%s", err, strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("git tag failed: %w", err)
	}

	tags := strings.Fields(string(out))
	sort.Strings(tags)
	return tags, nil
}

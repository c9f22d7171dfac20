package releases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"exoplayerlcevc/internal/version"
)

// ErrTagNotFound is returned by ResolveTag when the remote has no matching tag.
var ErrTagNotFound = errors.New("tag not found")

// hintCount bounds the list of nearby tags reported on a miss.
const hintCount = 5

// ResolveTag looks for the tag of release (prefix + release) on remoteURL and
// returns its exact name. Only exact matches count.
func ResolveTag(ctx context.Context, src Source, remoteURL, prefix, release string) (string, error) {
	want := version.TagName(prefix, release)

	tags, err := src.ListTags(ctx, remoteURL)
	if err != nil {
		return "", fmt.Errorf("list tags of %s: %w", remoteURL, err)
	}

	for _, t := range tags {
		if t == want {
			return t, nil
		}
	}

	if newest := version.Newest(prefix, tags, hintCount); len(newest) > 0 {
		return "", fmt.Errorf("%w: %s in %s (newest: %s)", ErrTagNotFound, want, remoteURL, strings.Join(newest, ", "))
	}
	return "", fmt.Errorf("%w: %s in %s", ErrTagNotFound, want, remoteURL)
}

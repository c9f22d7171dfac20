// Package version maps release identifiers to remote tag names and orders tags.
package version

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// NormalizeTag strips prefix from tag when what follows it is version-like.
//
// Examples with prefix "r":
//   - "r2.18.1"    -> "2.18.1"
//   - "2.18.1"     -> "2.18.1"
//   - " r2.19.0 "  -> "2.19.0"
//   - "release-v2" -> "release-v2"
func NormalizeTag(prefix, tag string) string {
	tag = strings.TrimSpace(tag)
	if prefix == "" {
		return tag
	}
	rest, ok := strings.CutPrefix(tag, prefix)
	if ok && rest != "" && unicode.IsDigit(rune(rest[0])) {
		return rest
	}
	return tag
}

// TagName returns the remote tag name for a release identifier. The identifier
// may be given with or without the prefix.
func TagName(prefix, release string) string {
	return prefix + NormalizeTag(prefix, release)
}

// Version is a parsed dotted version with an optional "-" prerelease suffix.
// Any number of numeric core segments is accepted ("2", "2.18", "2.18.1.4").
type Version struct {
	core []int
	pre  []string
}

// Parse reads s as a version. It reports false for values that do not start
// with a digit or carry a non-numeric core segment.
func Parse(s string) (Version, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !unicode.IsDigit(rune(s[0])) {
		return Version{}, false
	}

	main, pre, hasPre := strings.Cut(s, "-")

	var v Version
	for _, p := range strings.Split(main, ".") {
		n, ok := numeric(p)
		if !ok {
			return Version{}, false
		}
		v.core = append(v.core, n)
	}
	if hasPre {
		// An empty suffix ("2.18-") still ranks below the release.
		v.pre = strings.Split(pre, ".")
	}
	return v, true
}

// Compare returns -1, 0 or +1. Missing core segments count as zero and a
// release ranks above any prerelease of the same core.
func (v Version) Compare(o Version) int {
	n := max(len(v.core), len(o.core))
	for i := 0; i < n; i++ {
		a, b := segment(v.core, i), segment(o.core, i)
		if a != b {
			return cmpInt(a, b)
		}
	}

	switch {
	case v.pre == nil && o.pre == nil:
		return 0
	case v.pre == nil:
		return 1
	case o.pre == nil:
		return -1
	}
	return comparePrerelease(v.pre, o.pre)
}

func segment(core []int, i int) int {
	if i < len(core) {
		return core[i]
	}
	return 0
}

func numeric(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// comparePrerelease follows semver precedence: numeric identifiers rank below
// alphanumeric ones, and a shorter list ranks below a longer one with the same prefix.
func comparePrerelease(a, b []string) int {
	for i := 0; i < min(len(a), len(b)); i++ {
		an, aNum := numeric(a[i])
		bn, bNum := numeric(b[i])

		switch {
		case aNum && bNum:
			if c := cmpInt(an, bn); c != 0 {
				return c
			}
		case aNum:
			return -1
		case bNum:
			return 1
		default:
			if c := strings.Compare(a[i], b[i]); c != 0 {
				return c
			}
		}
	}
	return cmpInt(len(a), len(b))
}

// Greater reports whether a sorts ahead of b in descending order.
// Version-like values rank above anything else; two non-version values
// fall back to lexical descending order.
func Greater(a, b string) bool {
	va, aok := Parse(a)
	vb, bok := Parse(b)

	switch {
	case aok && !bok:
		return true
	case !aok && bok:
		return false
	case !aok && !bok:
		return a > b
	}
	return va.Compare(vb) > 0
}

// Newest returns at most n tags carrying prefix, newest first. Tags whose
// remainder is not version-like are ignored.
func Newest(prefix string, tags []string, n int) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !strings.HasPrefix(t, prefix) {
			continue
		}
		if _, ok := Parse(NormalizeTag(prefix, t)); !ok {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return Greater(NormalizeTag(prefix, out[i]), NormalizeTag(prefix, out[j]))
	})

	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

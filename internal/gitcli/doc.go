// Package gitcli drives the git binary for the two remote operations the tool needs:
// listing the tags of a remote with `git ls-remote --tags` and making a shallow,
// single-branch clone of one tag. It also lists the tags at HEAD of a local
// checkout, so an earlier clone can be checked before it is reused.
package gitcli

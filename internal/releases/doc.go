// Package releases resolves a release identifier to a tag on the upstream
// repository and clones that tag. Two backends implement Source: the git binary
// (the default) and go-git.
package releases

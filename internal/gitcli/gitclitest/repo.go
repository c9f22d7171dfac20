// Package gitclitest builds small local git repositories reachable through
// file:// URLs, for tests of the clone and tag-listing backends.
package gitclitest

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// VersionFile holds the release number at every tagged commit of Repo.
const VersionFile = "VERSION"

// Repo creates a repository with three commits and returns its file:// URL:
//
//	r2.17.1  lightweight tag on the first commit
//	r2.18.1  annotated tag on the second commit
//	r2.18.2  lightweight tag on the third commit
//
// The test is skipped when no git binary is available.
func Repo(t testing.TB) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	Git(t, dir, "init", "-q")

	for _, release := range []struct {
		version   string
		annotated bool
	}{
		{"2.17.1", false},
		{"2.18.1", true},
		{"2.18.2", false},
	} {
		if err := os.WriteFile(filepath.Join(dir, VersionFile), []byte(release.version+"\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", VersionFile, err)
		}
		Git(t, dir, "add", VersionFile)
		Git(t, dir, "commit", "-q", "-m", "release "+release.version)
		if release.annotated {
			Git(t, dir, "tag", "-a", "r"+release.version, "-m", "ExoPlayer "+release.version)
		} else {
			Git(t, dir, "tag", "r"+release.version)
		}
	}

	return "file://" + filepath.ToSlash(dir)
}

// Git runs git in dir with a fixed identity and returns its trimmed stdout.
func Git(t testing.TB, dir string, args ...string) string {
	t.Helper()
	base := []string{
		"-C", dir,
		"-c", "user.name=test",
		"-c", "user.email=test@example.invalid",
		"-c", "commit.gpgsign=false",
		"-c", "tag.gpgsign=false",
		"-c", "init.defaultBranch=main",
	}
	cmd := exec.Command("git", append(base, args...)...)
	out, err := cmd.Output()
	if err != nil {
		stderr := ""
		if ee, ok := err.(*exec.ExitError); ok {
			stderr = string(ee.Stderr)
		}
		t.Fatalf("git %s: %v: %s", strings.Join(args, " "), err, stderr)
	}
	return strings.TrimSpace(string(out))
}

// ShallowCommits returns the number of shallow boundary commits recorded in
// the clone at dir, or 0 when the clone has full history.
func ShallowCommits(t testing.TB, dir string) int {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, ".git", "shallow"))
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatalf("read shallow file: %v", err)
	}
	return len(strings.Fields(string(data)))
}

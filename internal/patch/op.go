package patch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	cp "github.com/otiai10/copy"
)

// Status describes what an operation did to the tree.
type Status int

const (
	// Changed means at least one file was written.
	Changed Status = iota
	// Unchanged means nothing matched; the operation was skipped.
	Unchanged
	// AlreadyApplied means the edit's replacement text is already in place.
	AlreadyApplied
)

func (s Status) String() string {
	switch s {
	case Changed:
		return "changed"
	case Unchanged:
		return "unchanged"
	case AlreadyApplied:
		return "already applied"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of a successful Op.
type Result struct {
	Status Status
	Detail string
}

// Op is one step of a patch plan.
type Op interface {
	Name() string
	Apply() (Result, error)
}

// Edit replaces every occurrence of Old with New in the file at Path.
//
// When Old is absent a fatal edit fails with *MissingSnippetError and a
// non-fatal one is skipped. An edit whose every Old occurrence is gone or sits
// inside an occurrence of New reports AlreadyApplied without touching the
// file, so a second run over a patched tree is a no-op. When New contains Old,
// occurrences already inside New are left alone.
type Edit struct {
	Label string
	Path  string
	Old   string
	New   string
	Fatal bool
}

func (e Edit) Name() string {
	if e.Label != "" {
		return e.Label
	}
	return "edit " + e.Path
}

func (e Edit) Apply() (Result, error) {
	if e.Old == "" {
		return Result{}, fmt.Errorf("edit %s: empty snippet", e.Path)
	}

	data, err := os.ReadFile(e.Path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", e.Path, err)
	}
	s := string(data)

	if alreadyApplied(s, e.Old, e.New) {
		return Result{Status: AlreadyApplied}, nil
	}

	out, n := replacePending(s, e.Old, e.New)
	if n == 0 {
		if e.Fatal {
			return Result{}, &MissingSnippetError{Path: e.Path, Snippet: e.Old}
		}
		return Result{Status: Unchanged}, nil
	}

	if err := WriteFileAtomically(e.Path, []byte(out)); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", e.Path, err)
	}
	return Result{Status: Changed, Detail: plural(n, "replacement")}, nil
}

func alreadyApplied(s, old, replacement string) bool {
	if replacement == "" || !strings.Contains(s, replacement) {
		return false
	}
	return strings.Count(s, old) == strings.Count(s, replacement)*strings.Count(replacement, old)
}

// replacePending replaces the occurrences of old that are not already part of
// an occurrence of replacement, and returns how many it replaced.
func replacePending(s, old, replacement string) (string, int) {
	if !strings.Contains(replacement, old) {
		return strings.ReplaceAll(s, old, replacement), strings.Count(s, old)
	}

	parts := strings.Split(s, replacement)
	n := 0
	for i, part := range parts {
		n += strings.Count(part, old)
		parts[i] = strings.ReplaceAll(part, old, replacement)
	}
	return strings.Join(parts, replacement), n
}

// Rewrite applies Rules to each file in Paths. Rules that do not match are
// skipped; a file that cannot be read is an error.
type Rewrite struct {
	Label string
	Paths []string
	Rules Rules
}

func (r Rewrite) Name() string {
	if r.Label != "" {
		return r.Label
	}
	return "rewrite " + strings.Join(r.Paths, ", ")
}

func (r Rewrite) Apply() (Result, error) {
	changed := 0
	for _, p := range r.Paths {
		ok, err := rewriteFile(p, r.Rules)
		if err != nil {
			return Result{}, err
		}
		if ok {
			changed++
		}
	}
	return rewriteResult(changed), nil
}

// RewriteTree applies Rules to every regular file below Dir.
type RewriteTree struct {
	Label string
	Dir   string
	Rules Rules
}

func (r RewriteTree) Name() string {
	if r.Label != "" {
		return r.Label
	}
	return "rewrite " + r.Dir
}

func (r RewriteTree) Apply() (Result, error) {
	changed := 0
	err := filepath.WalkDir(r.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ok, err := rewriteFile(path, r.Rules)
		if ok {
			changed++
		}
		return err
	})
	if err != nil {
		return Result{}, fmt.Errorf("rewrite %s: %w", r.Dir, err)
	}
	return rewriteResult(changed), nil
}

func rewriteFile(path string, rules Rules) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	out := rules.Apply(string(data))
	if out == string(data) {
		return false, nil
	}
	if err := WriteFileAtomically(path, []byte(out)); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

func rewriteResult(changed int) Result {
	if changed == 0 {
		return Result{Status: Unchanged}
	}
	return Result{Status: Changed, Detail: plural(changed, "file")}
}

// Copy copies the file or directory Src to Dst, creating Dst's parents.
// Permission bits and modification times are preserved. Entries whose base
// name is listed in Exclude are not copied.
type Copy struct {
	Label   string
	Src     string
	Dst     string
	Exclude []string
}

func (c Copy) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return "copy " + c.Src + " -> " + c.Dst
}

func (c Copy) Apply() (Result, error) {
	info, err := os.Stat(c.Src)
	if err != nil {
		return Result{}, fmt.Errorf("copy source: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.Dst), 0o755); err != nil {
		return Result{}, fmt.Errorf("mkdir: %w", err)
	}

	excluded := make(map[string]struct{}, len(c.Exclude))
	for _, name := range c.Exclude {
		excluded[name] = struct{}{}
	}

	copied := 0
	err = cp.Copy(c.Src, c.Dst, cp.Options{
		Skip: func(info os.FileInfo, src, dest string) (bool, error) {
			if _, skip := excluded[info.Name()]; skip {
				return true, nil
			}
			if !info.IsDir() {
				copied++
			}
			return false, nil
		},
		OnSymlink: func(string) cp.SymlinkAction {
			return cp.Shallow
		},
		PreserveTimes: true,
	})
	if err != nil {
		return Result{}, fmt.Errorf("copy %s to %s: %w", c.Src, c.Dst, err)
	}

	if !info.IsDir() {
		// Skip is only consulted for directory entries.
		copied = 1
	}
	return Result{Status: Changed, Detail: plural(copied, "file")}, nil
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ValidateJSON fails when the file at Path does not hold a JSON document.
type ValidateJSON struct {
	Label string
	Path  string
}

func (v ValidateJSON) Name() string {
	if v.Label != "" {
		return v.Label
	}
	return "validate " + v.Path
}

func (v ValidateJSON) Apply() (Result, error) {
	data, err := os.ReadFile(v.Path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", v.Path, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Result{}, fmt.Errorf("%s is not valid JSON: %w", v.Path, err)
	}
	return Result{Status: Unchanged}, nil
}

// IsMissingSnippet reports whether err is, or wraps, a *MissingSnippetError.
func IsMissingSnippet(err error) bool {
	var mse *MissingSnippetError
	return errors.As(err, &mse)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

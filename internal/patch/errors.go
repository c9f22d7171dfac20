package patch

import "fmt"

// MissingSnippetError reports a fatal edit whose anchor text was not found.
type MissingSnippetError struct {
	Path    string
	Snippet string
}

func (e *MissingSnippetError) Error() string {
	return fmt.Sprintf("could not find snippet %q in %s", e.Snippet, e.Path)
}

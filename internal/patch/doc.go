// Package patch applies literal text edits and file copies to a source tree.
//
// Rules are literal (old, new) pairs applied with global replacement; there is
// no pattern syntax and no escaping. An Edit is a single rule bound to one file
// that may be fatal when its anchor text is missing. Copy, Rewrite, RewriteTree
// and ValidateJSON cover the structural steps around the edits. Every file is
// rewritten through WriteFileAtomically.
package patch

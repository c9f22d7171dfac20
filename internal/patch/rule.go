package patch

import "strings"

// Rule is a literal substitution.
type Rule struct {
	Old string
	New string
}

// Apply replaces every occurrence of r.Old in s with r.New. An empty Old never matches.
func (r Rule) Apply(s string) string {
	if r.Old == "" {
		return s
	}
	return strings.ReplaceAll(s, r.Old, r.New)
}

// Rules is an ordered, read-only list of substitutions.
type Rules struct {
	list []Rule
}

// NewRules copies rules into a Rules value. Later changes to the argument slice
// do not affect the result.
func NewRules(rules ...Rule) Rules {
	return Rules{list: append([]Rule(nil), rules...)}
}

// Len returns the number of rules.
func (rs Rules) Len() int { return len(rs.list) }

// All returns a copy of the rules in order.
func (rs Rules) All() []Rule {
	return append([]Rule(nil), rs.list...)
}

// Apply runs every rule over s, left to right.
func (rs Rules) Apply(s string) string {
	for _, r := range rs.list {
		s = r.Apply(s)
	}
	return s
}

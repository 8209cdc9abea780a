package match

import "strings"

// Separator joins alternative literal prefixes in a configured pattern
// string, e.g. "45|46".
const Separator = "|"

// Matcher tests whether a material code starts with any of a fixed set of
// literal prefixes. It is compiled once at configuration time; a pattern
// that yields no usable prefixes degrades to a matcher that matches
// nothing rather than failing construction.
type Matcher struct {
	prefixes []string
}

// Compile builds a Matcher from a pipe-delimited pattern string. Prefixes
// are trimmed and empty entries dropped, so "45||46" and " 45 | 46 "
// compile to the same matcher. A blank or separator-only pattern compiles
// to a matcher that matches nothing.
func Compile(pattern string) *Matcher {
	return New(SplitPrefixes(pattern))
}

// New builds a Matcher from an explicit prefix list. Blank prefixes are
// dropped.
func New(prefixes []string) *Matcher {
	m := &Matcher{}
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		m.prefixes = append(m.prefixes, p)
	}
	return m
}

// Match reports whether material starts with any configured prefix. An
// empty matcher never matches.
func (m *Matcher) Match(material string) bool {
	if m == nil {
		return false
	}
	for _, p := range m.prefixes {
		if strings.HasPrefix(material, p) {
			return true
		}
	}
	return false
}

// Empty reports whether the matcher has no usable prefixes and therefore
// can never match. Callers use this to surface a degraded configuration.
func (m *Matcher) Empty() bool {
	return m == nil || len(m.prefixes) == 0
}

// String returns the canonical pipe-delimited form of the matcher.
func (m *Matcher) String() string {
	if m == nil {
		return ""
	}
	return strings.Join(m.prefixes, Separator)
}

// SplitPrefixes splits a pipe-delimited pattern string into its trimmed,
// non-empty prefixes.
func SplitPrefixes(pattern string) []string {
	var out []string
	for _, p := range strings.Split(pattern, Separator) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

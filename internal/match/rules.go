package match

// Rule binds an indenture-level upper bound to a set of alternative
// material prefixes. A (level, material) pair satisfies the rule when the
// prefix set matches the material and the level is at or below the bound.
type Rule struct {
	LevelBound int
	Prefixes   *Matcher
}

// Match reports whether the (level, material) pair satisfies this rule.
func (r Rule) Match(level int, material string) bool {
	return level <= r.LevelBound && r.Prefixes.Match(material)
}

// RuleSet is an ordered list of special termination rules. It is always a
// secondary signal, evaluated after the primary pattern matcher.
type RuleSet []Rule

// Match reports whether any rule in the set is satisfied by the
// (level, material) pair. An empty set never matches.
func (rs RuleSet) Match(level int, material string) bool {
	for _, r := range rs {
		if r.Match(level, material) {
			return true
		}
	}
	return false
}

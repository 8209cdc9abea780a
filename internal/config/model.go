package config

// SpecialRule is one secondary termination rule: a set of alternative
// material prefixes bound to a maximum indenture level. The comparison is
// fixed at less-than-or-equal.
type SpecialRule struct {
	Level    int
	Prefixes []string
}

// Model is the complete resolver configuration.
type Model struct {
	// Pattern is the primary termination matcher's literal prefixes.
	Pattern []string

	// ClassA and ClassB are the reserved prefix classes of the tie-break:
	// a class-A primary match is superseded by a class-B ancestor found
	// further up the chain.
	ClassA []string
	ClassB []string

	// SpecialRules is the ordered secondary rule set.
	SpecialRules []SpecialRule
}

// Default returns an empty configuration: a pattern that matches nothing
// and no special rules. Running with it is legal; every row then resolves
// through the structural terminal checks only.
func Default() *Model {
	return &Model{}
}

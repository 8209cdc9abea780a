// Package match implements the termination matchers of the resolution
// engine: the primary prefix-alternation matcher and the secondary
// level-bound special rules.
package match

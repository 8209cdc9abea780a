package hclconf

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/bomres/internal/config"
	"github.com/vk/bomres/internal/match"
)

// translate converts the decoded HCL schema into the agnostic model.
func (l *Loader) translate(block *resolverBlock) (*config.Model, error) {
	if block == nil {
		return config.Default(), nil
	}

	model := config.Default()

	var err error
	if model.Pattern, err = prefixValues(block.Pattern); err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	if model.ClassA, err = prefixValues(block.ClassA); err != nil {
		return nil, fmt.Errorf("class_a: %w", err)
	}
	if model.ClassB, err = prefixValues(block.ClassB); err != nil {
		return nil, fmt.Errorf("class_b: %w", err)
	}

	for i, rule := range block.Rules {
		prefixes, err := prefixValues(rule.Prefixes)
		if err != nil {
			return nil, fmt.Errorf("special_rule[%d].prefixes: %w", i, err)
		}
		model.SpecialRules = append(model.SpecialRules, config.SpecialRule{
			Level:    rule.Level,
			Prefixes: prefixes,
		})
	}

	return model, nil
}

// prefixValues evaluates a prefix expression into a flat prefix list. The
// expression may be a pipe-delimited string or a list of strings; a nil
// or null expression yields no prefixes.
func prefixValues(expr hcl.Expression) ([]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	if val.Type().Equals(cty.String) {
		var raw string
		if err := gocty.FromCtyValue(val, &raw); err != nil {
			return nil, err
		}
		return match.SplitPrefixes(raw), nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("expected a string or list of strings: %w", err)
	}
	var prefixes []string
	for _, elem := range listVal.AsValueSlice() {
		var raw string
		if err := gocty.FromCtyValue(elem, &raw); err != nil {
			return nil, err
		}
		// Each element may itself be pipe-delimited.
		prefixes = append(prefixes, match.SplitPrefixes(raw)...)
	}
	return prefixes, nil
}

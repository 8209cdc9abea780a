package hclconf

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/bomres/internal/config"
	"github.com/vk/bomres/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a configuration file.
type fileRoot struct {
	Resolver *resolverBlock `hcl:"resolver,block"`
	Remain   hcl.Body       `hcl:",remain"`
}

// resolverBlock is the HCL shape of the resolver configuration. The
// prefix attributes stay expressions so they can hold either a string or
// a list of strings.
type resolverBlock struct {
	Pattern hcl.Expression `hcl:"pattern,optional"`
	ClassA  hcl.Expression `hcl:"class_a,optional"`
	ClassB  hcl.Expression `hcl:"class_b,optional"`
	Rules   []*ruleBlock   `hcl:"special_rule,block"`
}

// ruleBlock is the HCL shape of one special termination rule.
type ruleBlock struct {
	Level    int            `hcl:"level"`
	Prefixes hcl.Expression `hcl:"prefixes"`
}

// Load parses the configuration file at path and translates it into the
// format-agnostic model. A file without a resolver block yields the
// default (empty) configuration.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model, err := l.translate(root.Resolver)
	if err != nil {
		return nil, fmt.Errorf("invalid resolver configuration in %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.",
		"pattern_prefixes", len(model.Pattern),
		"special_rules", len(model.SpecialRules),
	)
	return model, nil
}

// Package config defines the format-agnostic resolver configuration
// model, along with the Loader interface for reading it from a file.
//
// The config.Model is the single source of truth for the engine's
// termination behavior. The concrete HCL implementation lives in the
// hclconf package so the application core stays independent of the
// configuration syntax.
package config

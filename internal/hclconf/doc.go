// Package hclconf is the HCL implementation of the config.Loader
// interface. It parses a resolver configuration file such as:
//
//	resolver {
//	  pattern = "45|46"
//	  class_a = "9A"
//	  class_b = "9B"
//
//	  special_rule {
//	    level    = 3
//	    prefixes = ["M1", "M2"]
//	  }
//	}
//
// Prefix-bearing attributes accept either a pipe-delimited string or a
// list of strings.
package hclconf

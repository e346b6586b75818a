// Package registry provides a small generic registry that keeps items in
// registration order. pkgshift uses it to map transform kind names from
// configuration to their factories.
package registry

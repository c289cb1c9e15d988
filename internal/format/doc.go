// Package format implements the per-field transforms used by the mappers:
// timestamp parsing, currency formatting and enumerated tag renaming. Every
// forward transform here has an exact inverse.
package format

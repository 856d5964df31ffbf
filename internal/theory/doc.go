// Package theory contains small explainer programs for language features:
// generics, how interfaces grew, immutable value carriers, closed
// hierarchies, and OS threads versus goroutines.
package theory

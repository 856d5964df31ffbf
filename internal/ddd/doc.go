// Package ddd is a minimal domain-driven design skeleton: entities, value
// objects, aggregate roots that record domain events, and a generic repository.
package ddd

// Package solid pairs each SOLID principle with a compliant illustration and,
// where it teaches something, the violation it replaces.
package solid

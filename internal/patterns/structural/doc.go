// Package structural holds demos of structural design patterns.
package structural

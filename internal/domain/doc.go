// Package domain contains the core model shared by the catalogue, its demos and
// the hexagonal account slice.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// net/http, redis, or the filesystem. Infra/adapters map into/from these types.
package domain

// Package containers provides the engine's owning containers: Array, Set and Map.
//
// Every container exposes Num and Values so it satisfies Range and can feed a
// sequence pipeline directly. Keyed containers implement Finder, which returns
// a pointer into the container's storage or nil on a miss.
package containers

// Package catalog persists homomorphism counts keyed by the (pattern, target)
// pair they were computed for.
//
// Storage is a badger key-value database, on disk or in memory, fronted by a
// small LRU cache of recent lookups. Keys are SHA-256 digests of a canonical
// encoding of both graphs, so two graphs with the same vertex count and edge
// set always map to the same entry regardless of how they were built.
//
// A count does not depend on the method used to obtain it, so the method is
// not part of the key.
package catalog

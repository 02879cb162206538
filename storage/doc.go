// Package storage implements persistent, signature-tagged handle registries
// for long-lived objects that outlive a single call into the library --
// matrix systems, contexts, and the other top-level handles a host binding
// hands back to its caller as an opaque 64-bit key.
//
// Two shapes are provided: PersistentStorage[T], a growable bank assigning
// one key per stored object, and PersistentStorageMonoid[T], a single-slot
// lazily-constructed cell. Both are safe for concurrent use.
package storage

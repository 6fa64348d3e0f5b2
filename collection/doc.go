// Package collection provides the containers collection-typed parameters resolve into, and the
// factory registry that picks a concrete container for a requested type.
//
// A requested type is classified by the abstraction it satisfies (see Kind):
//
//   - Set: *EnumSet is built for the element type; interfaces default to *TreeSet.
//   - Queue: *BoundedQueue is built with the configured capacity; interfaces default to *Deque.
//   - List: interfaces default to *LinkedList.
//   - Collection: defaults to *ArrayList.
//
// Native slice types ([]T) are filled through *Slice and resolve to the typed slice itself.
// Concrete types are built only by a registered Factory; there is no reflective construction.
package collection

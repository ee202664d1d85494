// Package memory provides in-memory implementations of the storage ports.
//
// Every store guards its state with a sync.RWMutex, so one instance can be
// shared between HTTP handlers and background jobs. The stores hold the
// aggregates themselves; callers that mutate an aggregate still go through
// Update so a missing object is reported the same way a database adapter
// would report it.
package memory

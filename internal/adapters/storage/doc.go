// Package storage groups the outbound persistence adapters for boards and
// preferences. Each subpackage implements ports.BoardStore and
// ports.PreferenceStore for one backend:
//
//   - memory:     process-local maps, used for local development and tests
//   - redisstore: JSON snapshots in Redis, shared between service replicas
//
// The backend is chosen by the store.backend config key.
package storage

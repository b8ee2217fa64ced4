// Package state persists what a scaffolding run created.
//
// The tracking file holds a single ChangeSet: the paths created by the most
// recent run, in creation order. Every run overwrites it and revert consumes
// it. Alongside it, an append-only history log keeps one entry per run so
// past invocations can be inspected.
//
// Key concepts:
//   - ChangeSet: ordered set of paths created by one run
//   - Tracker: loads and records the single-slot ChangeSet
//   - History: append-only log of HistoryEntry values
package state

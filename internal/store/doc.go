// Package store provides the durable storage layer for ghexplorer.
//
// The [Store] interface is a small key/value slot store: the saved
// repository list lives under one fixed key and is rewritten as a whole on
// every change. Two backends implement it:
//   - BoltDB (default), an embedded key-value store, file ghexplorer.bolt
//   - SQLite (pure Go driver), file ghexplorer.db, see package sqlite
//
// Use [Open] with the configured backend name:
//
//	s, err := store.Open(store.BackendBolt, dataDir)
//	data, err := s.Get("@github-explorer:repositories")
package store

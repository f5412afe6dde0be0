// Package database provides the default persistent key-value store.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, migrations, kvstore.Store methods
//	└── entries/         # KVEntry CRUD operations
//
// Database satisfies kvstore.Store and kvstore.Lister, so every engine that
// persists state (XP ledger, stats, achievements, progress, cache) can run on
// it unchanged:
//
//	db, err := database.NewDatabase("./audaroky.db", logger)
//	ledger := xp.NewLedger(db, logger)
package database

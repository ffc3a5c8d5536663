// Package sqlitestore implements the slot store over a single local
// SQLite file. Each slot is one row in the slots table holding a JSON
// document, mirroring the original per-browser localStorage layout while
// gaining real durability (WAL journaling, fsync on commit).
package sqlitestore

// Package storage provides the key/value backends the session store persists
// into. A Backend only knows get/set/remove of string values; the meaning of
// the keys belongs to the session package.
//
// Two implementations are provided:
//
//   - SQLiteBackend: a kv_store table in a local SQLite file (modernc.org/sqlite),
//     created by embedded goose migrations. See InitDatabase.
//   - MemoryBackend: a map guarded by a mutex, for tests and throwaway runs.
package storage

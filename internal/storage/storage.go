// Package storage provides the durable key-value slots the transaction store
// persists into.
package storage

// KeyValueStore is a durable string key-value store. Get reports ok=false
// when the key has never been written or was removed.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

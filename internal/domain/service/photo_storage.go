package service

import "context"

// PhotoStorage persists optimized photo bytes under opaque keys. The local
// disk implementation lives in infra; the interface keeps a blob store swap
// possible without touching use cases.
type PhotoStorage interface {
	// Save writes the bytes and returns the storage key of the new asset.
	Save(ctx context.Context, data []byte) (key string, err error)

	// Delete removes a stored asset. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

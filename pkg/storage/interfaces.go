package storage

import "context"

// Storage is the opaque key-value collaborator the pipeline persists
// through. Values are JSON-marshaled records.
type Storage interface {
	Save(ctx context.Context, key string, data interface{}) error
	Load(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// StorageConfig holds settings for file-backed storage implementations.
type StorageConfig struct {
	DataDir     string `json:"data_dir"`
	EncryptData bool   `json:"encrypt_data"`
}

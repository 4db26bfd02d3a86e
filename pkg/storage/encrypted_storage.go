package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"seogen-go/pkg/logger"
)

// EncryptedFileStorage persists records as AES-256-GCM encrypted files
// under a data directory, one file per key.
type EncryptedFileStorage struct {
	dataDir   string
	encryptor *AESEncryptor
	log       *logger.Logger
}

// NewEncryptedFileStorage creates encrypted file storage rooted at
// config.DataDir, creating the directory if needed.
func NewEncryptedFileStorage(config StorageConfig, passphrase string) (*EncryptedFileStorage, error) {
	if config.DataDir == "" {
		return nil, fmt.Errorf("data_dir cannot be empty")
	}

	encryptor, err := NewAESEncryptor(passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to create encryptor: %w", err)
	}

	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &EncryptedFileStorage{
		dataDir:   config.DataDir,
		encryptor: encryptor,
		log:       logger.Component("encrypted_storage"),
	}, nil
}

// Save marshals, encrypts, and writes the record for key.
func (efs *EncryptedFileStorage) Save(ctx context.Context, key string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	encrypted, err := efs.encryptor.Encrypt(jsonData)
	if err != nil {
		return fmt.Errorf("failed to encrypt data: %w", err)
	}

	if err := os.WriteFile(efs.pathForKey(key), encrypted, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	efs.log.WithFields(map[string]interface{}{
		"key":  key,
		"size": len(encrypted),
	}).Debug("Record saved")
	return nil
}

// Load reads, decrypts, and unmarshals the record for key.
func (efs *EncryptedFileStorage) Load(ctx context.Context, key string, dest interface{}) error {
	encrypted, err := os.ReadFile(efs.pathForKey(key))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("key not found: %s", key)
		}
		return fmt.Errorf("failed to read file: %w", err)
	}

	jsonData, err := efs.encryptor.Decrypt(encrypted)
	if err != nil {
		return fmt.Errorf("failed to decrypt data: %w", err)
	}

	if err := json.Unmarshal(jsonData, dest); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}
	return nil
}

// Delete removes the record for key. Missing keys are not an error.
func (efs *EncryptedFileStorage) Delete(ctx context.Context, key string) error {
	if err := os.Remove(efs.pathForKey(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Exists checks whether a record exists for key.
func (efs *EncryptedFileStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(efs.pathForKey(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	return true, nil
}

func (efs *EncryptedFileStorage) pathForKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(efs.dataDir, hex.EncodeToString(sum[:16])+".dat")
}

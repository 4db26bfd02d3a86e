package storage

import (
	"bytes"
	"context"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStorage_Roundtrip(t *testing.T) {
	ms := NewMemoryStorage()
	ctx := context.Background()

	if err := ms.Save(ctx, "test-key", record{Name: "alpha", Count: 3}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	var got record
	if err := ms.Load(ctx, "test-key", &got); err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if got.Name != "alpha" || got.Count != 3 {
		t.Errorf("Loaded record %+v does not match saved data", got)
	}

	exists, err := ms.Exists(ctx, "test-key")
	if err != nil || !exists {
		t.Errorf("Expected key to exist, got exists=%v err=%v", exists, err)
	}
}

func TestMemoryStorage_EmptyKeyRejected(t *testing.T) {
	ms := NewMemoryStorage()

	if err := ms.Save(context.Background(), "", record{Name: "alpha"}); err == nil {
		t.Error("Expected error for empty key")
	}
}

func TestMemoryStorage_LoadedCopyIsDetached(t *testing.T) {
	ms := NewMemoryStorage()
	ctx := context.Background()

	saved := record{Name: "alpha", Count: 1}
	if err := ms.Save(ctx, "test-key", saved); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	saved.Count = 99

	var got record
	if err := ms.Load(ctx, "test-key", &got); err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if got.Count != 1 {
		t.Errorf("Expected snapshot taken at save time, got count %d", got.Count)
	}
}

func TestMemoryStorage_MissingKey(t *testing.T) {
	ms := NewMemoryStorage()
	ctx := context.Background()

	var got record
	if err := ms.Load(ctx, "missing", &got); err == nil {
		t.Error("Expected error for missing key")
	}
	exists, err := ms.Exists(ctx, "missing")
	if err != nil || exists {
		t.Errorf("Expected key to not exist, got exists=%v err=%v", exists, err)
	}
}

func TestMemoryStorage_Delete(t *testing.T) {
	ms := NewMemoryStorage()
	ctx := context.Background()

	if err := ms.Save(ctx, "test-key", record{Name: "beta"}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if err := ms.Delete(ctx, "test-key"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	exists, _ := ms.Exists(ctx, "test-key")
	if exists {
		t.Error("Expected key gone after delete")
	}
}

func TestAESEncryptor_Roundtrip(t *testing.T) {
	enc, err := NewAESEncryptor("test-passphrase")
	if err != nil {
		t.Fatalf("Failed to create encryptor: %v", err)
	}

	plaintext := []byte(`{"name":"secret record"}`)
	ciphertext, err := enc.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}
	if bytes.Contains(ciphertext, []byte("secret record")) {
		t.Error("Ciphertext leaks plaintext")
	}

	decrypted, err := enc.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Failed to decrypt: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("Decrypted data %q does not match original %q", decrypted, plaintext)
	}
}

func TestAESEncryptor_WrongPassphrase(t *testing.T) {
	enc1, _ := NewAESEncryptor("passphrase-one")
	enc2, _ := NewAESEncryptor("passphrase-two")

	ciphertext, err := enc1.Encrypt([]byte("payload"))
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}
	if _, err := enc2.Decrypt(ciphertext); err == nil {
		t.Error("Expected decryption failure with the wrong passphrase")
	}
}

func TestAESEncryptor_EmptyPassphrase(t *testing.T) {
	if _, err := NewAESEncryptor(""); err == nil {
		t.Error("Expected error for empty passphrase")
	}
}

func TestEncryptedFileStorage_Roundtrip(t *testing.T) {
	efs, err := NewEncryptedFileStorage(StorageConfig{DataDir: t.TempDir()}, "test-passphrase")
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	ctx := context.Background()

	if err := efs.Save(ctx, "business:biz-1", record{Name: "gamma", Count: 7}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	var got record
	if err := efs.Load(ctx, "business:biz-1", &got); err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if got.Name != "gamma" || got.Count != 7 {
		t.Errorf("Loaded record %+v does not match saved data", got)
	}

	if err := efs.Delete(ctx, "business:biz-1"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	exists, err := efs.Exists(ctx, "business:biz-1")
	if err != nil || exists {
		t.Errorf("Expected key gone after delete, got exists=%v err=%v", exists, err)
	}

	// Deleting again must not fail.
	if err := efs.Delete(ctx, "business:biz-1"); err != nil {
		t.Errorf("Expected idempotent delete, got %v", err)
	}
}

func TestEncryptedFileStorage_EmptyDataDir(t *testing.T) {
	if _, err := NewEncryptedFileStorage(StorageConfig{}, "test-passphrase"); err == nil {
		t.Error("Expected error for empty data dir")
	}
}

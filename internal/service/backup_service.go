package service

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"practicego/internal/repository"
)

// BackupService exports and imports the key-value store as a JSON
// snapshot.
type BackupService struct {
	storeRepo *repository.StoreRepository
}

// NewBackupService creates a new backup service
func NewBackupService(storeRepo *repository.StoreRepository) *BackupService {
	return &BackupService{storeRepo: storeRepo}
}

// Snapshot is the on-disk backup format
type Snapshot struct {
	ExportedAt time.Time         `json:"exportedAt"`
	Entries    map[string]string `json:"entries"`
}

// Export writes every stored key to a JSON file
func (s *BackupService) Export(outputPath string) error {
	keys, err := s.storeRepo.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	snapshot := Snapshot{
		ExportedAt: time.Now(),
		Entries:    make(map[string]string, len(keys)),
	}
	for _, key := range keys {
		value, found, err := s.storeRepo.Get(key)
		if err != nil {
			return fmt.Errorf("failed to read key %s: %w", key, err)
		}
		if found {
			snapshot.Entries[key] = value
		}
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// Import loads a JSON snapshot into the store, overwriting any entries
// that share a key.
func (s *BackupService) Import(inputPath string) (int, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read backup file: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return 0, fmt.Errorf("failed to parse backup file: %w", err)
	}

	imported := 0
	for key, value := range snapshot.Entries {
		if err := s.storeRepo.Set(key, value); err != nil {
			return imported, fmt.Errorf("failed to restore key %s: %w", key, err)
		}
		imported++
	}
	return imported, nil
}

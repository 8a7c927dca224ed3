package repository

import (
	"context"
	"time"
)

// Save defines the interface for persisted save documents.
// Documents are opaque JSON payloads keyed by save id.
type Save interface {
	// Load returns domain.ErrSaveNotFound when no document exists for saveID
	Load(ctx context.Context, saveID string) ([]byte, error)
	Save(ctx context.Context, saveID string, data []byte) error
	Delete(ctx context.Context, saveID string) error
	List(ctx context.Context) ([]SaveInfo, error)
}

// SaveInfo summarises one stored document
type SaveInfo struct {
	SaveID    string    `json:"save_id"`
	Size      int       `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

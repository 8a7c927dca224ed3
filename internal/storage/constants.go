package storage

import "time"

// File store settings
const (
	// FileExtension is appended to every save id on disk
	FileExtension = ".json"

	// DirPermissions is the permission mode for the save directory
	DirPermissions = 0755

	// FilePermissions is the permission mode for save files
	FilePermissions = 0600
)

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// Error messages
const (
	ErrMsgInvalidSaveIDFmt = "invalid save id %q"
	ErrMsgReadFailedFmt    = "failed to read save %s: %w"
	ErrMsgWriteFailedFmt   = "failed to write save %s: %w"
	ErrMsgDeleteFailedFmt  = "failed to delete save %s: %w"
	ErrMsgListFailedFmt    = "failed to list saves in %s: %w"
	ErrMsgMkdirFailedFmt   = "failed to create save directory %s: %w"
)

package config

import "time"

const (
	// Configuration file paths
	ConfigPathCatalog = "configs/catalog.yaml"
)

// Storage backends
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// SupportedBackends lists every accepted STORAGE_BACKEND value
var SupportedBackends = []string{BackendFile, BackendSQLite, BackendPostgres, BackendMemory}

// Defaults
const (
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultServiceName        = "craftboard"
	DefaultVersion            = "dev"
	DefaultEnvironment        = "dev"
	DefaultSaveDir            = "saves"
	DefaultSQLitePath         = "craftboard.db"
	DefaultSaveCacheSize      = 512
	DefaultSaveCacheTTL       = 10 * time.Minute
	DefaultDBMaxConns         = 4
	DefaultResolverCacheSize  = 1024
	DefaultLogDir             = "logs"
	DefaultEventRetentionDays = 30
	DefaultCleanupInterval    = 24 * time.Hour
	DefaultAutosaveInterval   = time.Minute
)

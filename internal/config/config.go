package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	LogDir      string

	// HTTP
	APIKey         string
	TrustedProxies []string

	// Catalog
	CatalogPath string

	// Persistence
	StorageBackend string
	SaveDir        string
	SQLitePath     string
	SaveCacheSize  int
	SaveCacheTTL   time.Duration
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxConns     int

	// Crafting
	DepletionEnabled  bool
	ResolverCacheSize int

	// Events
	EventJournalPath   string
	EventRetentionDays int
	CleanupInterval    time.Duration
	AutosaveInterval   time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		CatalogPath: getEnv("CATALOG_PATH", ConfigPathCatalog),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendFile)),
		SaveDir:        getEnv("SAVE_DIR", DefaultSaveDir),
		SQLitePath:     getEnv("SQLITE_PATH", DefaultSQLitePath),
		SaveCacheSize:  getEnvAsInt("SAVE_CACHE_SIZE", DefaultSaveCacheSize),
		SaveCacheTTL:   getEnvAsDuration("SAVE_CACHE_TTL", DefaultSaveCacheTTL),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "craftboard"),
		DBMaxConns:     getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),

		DepletionEnabled:  getEnvAsBool("CRAFT_DEPLETION_ENABLED", true),
		ResolverCacheSize: getEnvAsInt("RESOLVER_CACHE_SIZE", DefaultResolverCacheSize),

		EventJournalPath:   getEnv("EVENT_JOURNAL_PATH", ""),
		EventRetentionDays: getEnvAsInt("EVENT_RETENTION_DAYS", DefaultEventRetentionDays),
		CleanupInterval:    getEnvAsDuration("EVENT_CLEANUP_INTERVAL", DefaultCleanupInterval),
		AutosaveInterval:   getEnvAsDuration("AUTOSAVE_INTERVAL", DefaultAutosaveInterval),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	switch cfg.StorageBackend {
	case BackendFile, BackendSQLite, BackendPostgres, BackendMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND value %q: expected one of %s",
			cfg.StorageBackend, strings.Join(SupportedBackends, ", "))
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool parses a boolean environment variable, falling back to the default when unset or invalid
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration environment variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// splitList splits a comma separated value, dropping empty entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

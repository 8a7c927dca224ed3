package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists the environment variables each storage backend needs
var RequiredEnvVars = map[string][]string{
	BackendFile:     {"SAVE_DIR"},
	BackendSQLite:   {"SQLITE_PATH"},
	BackendPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	BackendMemory:   {},
}

// ValidateEnv checks that the environment variables required by the selected
// storage backend are set
func ValidateEnv() error {
	backend := strings.ToLower(os.Getenv("STORAGE_BACKEND"))
	if backend == "" {
		backend = BackendFile
	}

	required, ok := RequiredEnvVars[backend]
	if !ok {
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", backend)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for %s backend: %s", backend, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if strings.ToLower(os.Getenv("STORAGE_BACKEND")) == BackendPostgres && os.Getenv("DB_PASSWORD") == "postgres" {
		warnings = append(warnings, "DB_PASSWORD is the default value - please use a secure password")
	}

	if strings.ToLower(os.Getenv("STORAGE_BACKEND")) == BackendMemory {
		warnings = append(warnings, "STORAGE_BACKEND=memory keeps progress only for the lifetime of the process")
	}

	return warnings, nil
}

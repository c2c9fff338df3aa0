package update

import (
	"os"
	"strings"
)

type RuntimeConfig struct {
	DefaultDescription string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DefaultDescription: "Tracked activity",
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TIMESHEET_DEFAULT_DESCRIPTION")); v != "" {
		cfg.DefaultDescription = v
	}
	return cfg
}

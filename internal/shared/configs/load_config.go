package configs

import (
	"fmt"
	"strings"

	"log-dashboard/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "LOG_DASHBOARD"

// LoadConfig reads configuration from file, applies defaults and environment overrides, and validates it.
// Environment variables use the LOG_DASHBOARD_ prefix with dots replaced by underscores,
// e.g. LOG_DASHBOARD_BACKEND_BASE_URL.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %s", validators.Describe(err))
	}
	if cfg.SnapshotStore.Driver == "redis" && cfg.SnapshotStore.Redis.Addr == "" {
		return nil, fmt.Errorf("config validation failed: snapshotstore.redis.addr (required for redis driver)")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.format", "json")
	v.SetDefault("backend.timeout", 30)
	v.SetDefault("session.cookie_name", "log_dashboard_session")
	v.SetDefault("session.ttl", 60)
	v.SetDefault("session.login_path", "/")
	v.SetDefault("snapshot_store.driver", "file")
	v.SetDefault("dashboard.anomaly_threshold", 5)
	v.SetDefault("dashboard.time_zone", "Local")
	v.SetDefault("dashboard.max_upload_bytes", 10*1024*1024)
	v.SetDefault("dashboard.refresh_interval", 15)
	v.SetDefault("insights.confidence_high", 90)
	v.SetDefault("insights.confidence_medium", 70)
}

package configs

// Config holds all configuration for the application.
type Config struct {
	Server        ServerConfig        `mapstructure:"server" validate:"required"`
	Log           LogConfig           `mapstructure:"log" validate:"required"`
	FileStorage   FileStorageConfig   `mapstructure:"file_storage" validate:"required"`
	Backend       BackendConfig       `mapstructure:"backend" validate:"required"`
	Session       SessionConfig       `mapstructure:"session" validate:"required"`
	SnapshotStore SnapshotStoreConfig `mapstructure:"snapshot_store" validate:"required"`
	Dashboard     DashboardConfig     `mapstructure:"dashboard" validate:"required"`
	Insights      InsightsConfig      `mapstructure:"insights"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json console"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// BackendConfig points at the log-analysis backend that owns files, entries and insights.
type BackendConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	Timeout int    `mapstructure:"timeout" validate:"required,min=1"` // seconds
}

// SessionConfig holds dashboard session settings.
type SessionConfig struct {
	CookieName   string `mapstructure:"cookie_name" validate:"required"`
	TTL          int    `mapstructure:"ttl" validate:"required,min=1"` // minutes
	LoginPath    string `mapstructure:"login_path" validate:"required,startswith=/"`
	SecureCookie bool   `mapstructure:"secure_cookie"`
}

// SnapshotStoreConfig selects where last-known metrics snapshots are kept.
type SnapshotStoreConfig struct {
	Driver string      `mapstructure:"driver" validate:"required,oneof=file redis"`
	Redis  RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds redis connection settings for the redis snapshot driver.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
	TTL      int    `mapstructure:"ttl" validate:"min=0"` // minutes, 0 keeps snapshots forever
}

// DashboardConfig holds metrics and view settings.
type DashboardConfig struct {
	AnomalyThreshold int    `mapstructure:"anomaly_threshold" validate:"required,min=1"`
	TimeZone         string `mapstructure:"time_zone" validate:"required"`
	MaxUploadBytes   int64  `mapstructure:"max_upload_bytes" validate:"required,min=1"`
	RefreshInterval  int    `mapstructure:"refresh_interval" validate:"required,min=1"` // seconds, live stream polling
}

// InsightsConfig holds the confidence cut-offs used to badge AI insights.
type InsightsConfig struct {
	ConfidenceHigh   int `mapstructure:"confidence_high" validate:"min=0,max=100,gtefield=ConfidenceMedium"`
	ConfidenceMedium int `mapstructure:"confidence_medium" validate:"min=0,max=100"`
}

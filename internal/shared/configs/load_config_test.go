package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
backend:
  base_url: http://localhost:8000
  timeout: 15
session:
  cookie_name: sid
  ttl: 30
  login_path: /login
snapshot_store:
  driver: file
dashboard:
  anomaly_threshold: 5
  time_zone: UTC
  max_upload_bytes: 1048576
  refresh_interval: 10
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "test_config_*.yml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	cfg, err := LoadConfig(writeTempConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data", cfg.FileStorage.RootDir)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 15, cfg.Backend.Timeout)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, 30, cfg.Session.TTL)
	assert.Equal(t, "/login", cfg.Session.LoginPath)
	assert.Equal(t, "file", cfg.SnapshotStore.Driver)
	assert.Equal(t, 5, cfg.Dashboard.AnomalyThreshold)
	assert.Equal(t, "UTC", cfg.Dashboard.TimeZone)
	assert.Equal(t, int64(1048576), cfg.Dashboard.MaxUploadBytes)
	assert.Equal(t, 10, cfg.Dashboard.RefreshInterval)
}

func TestLoadConfig_Defaults(t *testing.T) {
	minimal := `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
backend:
  base_url: http://backend:8000
`
	cfg, err := LoadConfig(writeTempConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 30, cfg.Backend.Timeout)
	assert.Equal(t, "log_dashboard_session", cfg.Session.CookieName)
	assert.Equal(t, "/", cfg.Session.LoginPath)
	assert.Equal(t, "file", cfg.SnapshotStore.Driver)
	assert.Equal(t, 5, cfg.Dashboard.AnomalyThreshold)
	assert.Equal(t, "Local", cfg.Dashboard.TimeZone)
	assert.Equal(t, 90, cfg.Insights.ConfidenceHigh)
	assert.Equal(t, 70, cfg.Insights.ConfidenceMedium)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("LOG_DASHBOARD_BACKEND_BASE_URL", "http://override:9000")

	cfg, err := LoadConfig(writeTempConfig(t, validConfig))
	require.NoError(t, err)
	assert.Equal(t, "http://override:9000", cfg.Backend.BaseURL)
}

func TestLoadConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		errContains string
	}{
		{
			name: "missing port",
			config: `server:
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
backend:
  base_url: http://localhost:8000
`,
			errContains: "port",
		},
		{
			name: "port out of range",
			config: `server:
  port: 70000
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
backend:
  base_url: http://localhost:8000
`,
			errContains: "server.port (max=65535)",
		},
		{
			name: "missing file storage root dir",
			config: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage: {}
backend:
  base_url: http://localhost:8000
`,
			errContains: " filestorage.rootdir",
		},
		{
			name: "backend url is not a url",
			config: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
backend:
  base_url: not a url
`,
			errContains: "backend.baseurl (url)",
		},
		{
			name: "unknown snapshot driver",
			config: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
backend:
  base_url: http://localhost:8000
snapshot_store:
  driver: memcached
`,
			errContains: "snapshotstore.driver (oneof=file redis)",
		},
		{
			name: "redis driver without address",
			config: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
backend:
  base_url: http://localhost:8000
snapshot_store:
  driver: redis
`,
			errContains: "snapshotstore.redis.addr",
		},
		{
			name: "medium confidence above high",
			config: `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
backend:
  base_url: http://localhost:8000
insights:
  confidence_high: 60
  confidence_medium: 80
`,
			errContains: "insights.confidencehigh (gtefield=ConfidenceMedium)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeTempConfig(t, tt.config))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/configs.yml")
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"max_upload_bytes": 2048,
		"min_job_text_length": 40,
		"use_browser": true,
		"fetch_timeout": "5s",
		"log_json": true,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, 40, cfg.MinJobTextLength)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeoutDuration())
	assert.True(t, cfg.LogJSON)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "Defaults", cfg: Defaults()},
		{name: "Zero value", cfg: Config{}},
		{name: "Negative port", cfg: Config{Port: -1}, wantErr: "'Port' failed 'gte'"},
		{name: "Port too large", cfg: Config{Port: 70000}, wantErr: "'Port' failed 'lte'"},
		{name: "Negative upload limit", cfg: Config{MaxUploadBytes: -5}, wantErr: "'MaxUploadBytes' failed 'gte'"},
		{name: "Negative min length", cfg: Config{MinJobTextLength: -1}, wantErr: "'MinJobTextLength' failed 'gte'"},
		{name: "Bad duration", cfg: Config{FetchTimeout: "soon"}, wantErr: "'fetch_timeout' is not a duration"},
		{name: "Zero duration", cfg: Config{FetchTimeout: "0s"}, wantErr: "'fetch_timeout' must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config error")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Port: 9000, Verbose: true}

	result := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, result.Port)
	assert.Equal(t, int64(DefaultMaxUploadBytes), result.MaxUploadBytes)
	assert.Equal(t, DefaultMinJobTextLength, result.MinJobTextLength)
	assert.Equal(t, DefaultFetchTimeout, result.FetchTimeout)
	assert.True(t, result.Verbose)
	assert.Zero(t, cfg.MaxUploadBytes, "receiver is not modified")
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{Port: 9000}
	result := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, *cfg, result)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("COPILOT_PORT", "7070")
	t.Setenv("COPILOT_MIN_JOB_TEXT_LENGTH", "50")
	t.Setenv("COPILOT_MAX_UPLOAD_BYTES", "4096")
	t.Setenv("COPILOT_USE_BROWSER", "true")
	t.Setenv("COPILOT_LOG_JSON", "1")
	t.Setenv("COPILOT_VERBOSE", "false")
	t.Setenv("COPILOT_FETCH_TIMEOUT", "12s")

	cfg := Config{Verbose: true}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 50, cfg.MinJobTextLength)
	assert.Equal(t, int64(4096), cfg.MaxUploadBytes)
	assert.True(t, cfg.UseBrowser)
	assert.True(t, cfg.LogJSON)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 12*time.Second, cfg.FetchTimeoutDuration())
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	t.Setenv("COPILOT_PORT", "")

	cfg := Config{Port: 8080}
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, 8080, cfg.Port)
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"COPILOT_PORT", "eighty"},
		{"COPILOT_MAX_UPLOAD_BYTES", "lots"},
		{"COPILOT_USE_BROWSER", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := Defaults()
			err := cfg.ApplyEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("No file uses defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Defaults(), *cfg)
		assert.Equal(t, ":8080", cfg.Addr())
	})

	t.Run("File values then environment", func(t *testing.T) {
		t.Setenv("COPILOT_PORT", "6060")
		cfg, err := Load(writeConfig(t, `{"port": 9090, "min_job_text_length": 30}`))
		require.NoError(t, err)
		assert.Equal(t, 6060, cfg.Port)
		assert.Equal(t, 30, cfg.MinJobTextLength)
		assert.Equal(t, int64(DefaultMaxUploadBytes), cfg.MaxUploadBytes)
	})

	t.Run("Invalid result", func(t *testing.T) {
		_, err := Load(writeConfig(t, `{"port": 99999}`))
		require.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})
}

func TestFetchTimeoutDuration_Fallback(t *testing.T) {
	assert.Equal(t, 30*time.Second, (&Config{}).FetchTimeoutDuration())
	assert.Equal(t, 30*time.Second, (&Config{FetchTimeout: "nope"}).FetchTimeoutDuration())
}

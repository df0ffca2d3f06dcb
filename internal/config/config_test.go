package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekta-240/provider-pulse/internal/common"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	SetDefaults()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "daily", cfg.Batch.Type)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	SetDefaults()
	viper.Set("api.base_url", "https://validation.example.com")
	viper.Set("logging.format", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://validation.example.com", cfg.API.BaseURL)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{name: "empty base url", key: "api.base_url", value: "", wantErr: common.ErrMissingConfig},
		{name: "zero timeout", key: "api.timeout", value: time.Duration(0), wantErr: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			SetDefaults()
			viper.Set(tt.key, tt.value)

			_, err := Load()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("PULSE_TEST_DIR", "/tmp/pulse")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, "/tmp/pulse/config.yaml", ExpandPath("$PULSE_TEST_DIR/config.yaml"))
	assert.NotContains(t, ExpandPath("~/config.yaml"), "~")
}

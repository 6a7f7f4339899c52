package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		errorMsg    string
	}{
		{
			name:        "Success with defaults",
			envVars:     map[string]string{},
			expectError: false,
		},
		{
			name: "Success with all config specified",
			envVars: map[string]string{
				"API_BASE_URL":                "https://api.clinic.example",
				"HTTP_TIMEOUT":                "30",
				"CREDENTIALS_FILE":            "/tmp/creds.json",
				"WHATSAPP_ORDER_NUMBER":       "911234567890",
				"WHATSAPP_APPOINTMENT_NUMBER": "911234567891",
				"LOG_LEVEL":                   "debug",
				"LOG_FORMAT":                  "json",
			},
			expectError: false,
		},
		{
			name: "Error - malformed base URL",
			envVars: map[string]string{
				"API_BASE_URL": "not a url",
			},
			expectError: true,
			errorMsg:    "invalid API base URL",
		},
		{
			name: "Error - zero timeout",
			envVars: map[string]string{
				"HTTP_TIMEOUT": "0",
			},
			expectError: true,
			errorMsg:    "HTTP timeout must be at least 1 second",
		},
		{
			name: "Error - invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL": "invalid",
			},
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name: "Error - invalid log format",
			envVars: map[string]string{
				"LOG_FORMAT": "xml",
			},
			expectError: true,
			errorMsg:    "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 15, cfg.API.Timeout)
	assert.Empty(t, cfg.Storage.CredentialsFile)
	assert.Equal(t, "919876543210", cfg.WhatsApp.OrderNumber)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
}

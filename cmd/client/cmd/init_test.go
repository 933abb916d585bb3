package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"notekeeper/internal/app/client/config"
)

func TestNewFileConfig(t *testing.T) {
	cfg := &config.Config{
		Env:            config.EnvDev,
		ServerURL:      "https://notes.example.com",
		RequestTimeout: 15 * time.Second,
		IDScheme:       "clock",
		NoColor:        true,
	}

	data, err := yaml.Marshal(newFileConfig(cfg))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, map[string]interface{}{
		"app_env":                 "dev",
		"server_url":              "https://notes.example.com",
		"request_timeout_seconds": 15,
		"id_scheme":               "clock",
		"no_color":                true,
	}, got)
}

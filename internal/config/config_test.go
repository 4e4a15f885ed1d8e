// ABOUTME: Tests for config loading, env expansion, and validation.
// ABOUTME: Uses temp files so no fixtures are needed.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: "localhost:8080"

backend:
  account_id: "acct-1"
  api_token: "tok-1"

auth:
  token: "shared"

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddr)
	assert.Equal(t, "acct-1", cfg.Backend.AccountID)
	assert.Equal(t, "tok-1", cfg.Backend.APIToken)
	assert.Equal(t, "shared", cfg.Auth.Token)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_API_TOKEN", "from-env")

	path := writeConfig(t, `
server:
  http_addr: "localhost:8080"
backend:
  account_id: "acct-1"
  api_token: "${TEST_API_TOKEN}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Backend.APIToken)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not: valid")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing http_addr",
			content: `
backend:
  account_id: "a"
  api_token: "t"
`,
			wantErr: "server.http_addr",
		},
		{
			name: "missing account_id",
			content: `
server:
  http_addr: "localhost:8080"
backend:
  api_token: "t"
`,
			wantErr: "backend.account_id",
		},
		{
			name: "missing api_token",
			content: `
server:
  http_addr: "localhost:8080"
backend:
  account_id: "a"
`,
			wantErr: "backend.api_token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-o", ":9191", "-d", "db", "-s", "secret", "-k", "custom",
			"-p", "pass", "-n", "salt", "-t", "1", "-r", "3", "-e", "redis:6379",
			"-l", "1.5", "-b", "7", "-v", "debug",
		}, expected: &Config{
			EndpointAddrGRPC:             "127.0.0.1:9090",
			OpsAddrHTTP:                  ":9191",
			DatabaseDSN:                  "db",
			SecretKey:                    "secret",
			CustomTokenSecret:            "custom",
			SealPassphrase:               "pass",
			SealSalt:                     "salt",
			AccessTokenValidityDuration:  1 * time.Minute,
			RefreshTokenValidityDuration: 3 * time.Minute,
			RedisAddr:                    "redis:6379",
			WriteRateLimit:               1.5,
			WriteBurst:                   7,
			LogLevel:                     "debug",
		}},
		{name: "config flag is ignored", args: []string{"cmd", "-c", "x.json", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"}},
		{name: "bad int panics", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

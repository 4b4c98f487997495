package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/futureletter/internal/flagx"
	"github.com/dmitrijs2005/futureletter/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// accept both "15m" style strings and integer nanoseconds. Fields missing
// from the file keep their current value.
type JsonConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc"`
	OpsAddrHTTP                  *string         `json:"ops_addr_http"`
	DatabaseDSN                  *string         `json:"database_dsn"`
	SecretKey                    *string         `json:"secret_key"`
	CustomTokenSecret            *string         `json:"custom_token_secret"`
	SealPassphrase               *string         `json:"seal_passphrase"`
	SealSalt                     *string         `json:"seal_salt"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	RedisAddr                    *string         `json:"redis_addr"`
	WriteRateLimit               *float64        `json:"write_rate_limit"`
	WriteBurst                   *int            `json:"write_burst"`
	LogLevel                     *string         `json:"log_level"`
}

// parseJson loads values from the file named by -c/-config (or the CONFIG
// environment variable). Unreadable files and invalid JSON panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.OpsAddrHTTP, c.OpsAddrHTTP)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.CustomTokenSecret, c.CustomTokenSecret)
	setIf(&config.SealPassphrase, c.SealPassphrase)
	setIf(&config.SealSalt, c.SealSalt)
	setIf(&config.RedisAddr, c.RedisAddr)
	setIf(&config.WriteRateLimit, c.WriteRateLimit)
	setIf(&config.WriteBurst, c.WriteBurst)
	setIf(&config.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration != nil {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

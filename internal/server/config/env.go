package config

import "github.com/dmitrijs2005/futureletter/internal/flagx"

const envPrefix = "FUTURELETTER_"

// parseEnv overlays FUTURELETTER_* variables, after loading a .env file from
// the working directory if one exists. Malformed numbers or durations panic.
func parseEnv(config *Config) {
	flagx.LoadDotEnv()

	flagx.EnvString(envPrefix+"GRPC_ADDR", &config.EndpointAddrGRPC)
	flagx.EnvString(envPrefix+"OPS_ADDR", &config.OpsAddrHTTP)
	flagx.EnvString(envPrefix+"DATABASE_DSN", &config.DatabaseDSN)
	flagx.EnvString(envPrefix+"SECRET_KEY", &config.SecretKey)
	flagx.EnvString(envPrefix+"CUSTOM_TOKEN_SECRET", &config.CustomTokenSecret)
	flagx.EnvString(envPrefix+"SEAL_PASSPHRASE", &config.SealPassphrase)
	flagx.EnvString(envPrefix+"SEAL_SALT", &config.SealSalt)
	flagx.EnvString(envPrefix+"REDIS_ADDR", &config.RedisAddr)
	flagx.EnvString(envPrefix+"LOG_LEVEL", &config.LogLevel)

	for _, err := range []error{
		flagx.EnvDuration(envPrefix+"ACCESS_TOKEN_TTL", &config.AccessTokenValidityDuration),
		flagx.EnvDuration(envPrefix+"REFRESH_TOKEN_TTL", &config.RefreshTokenValidityDuration),
		flagx.EnvFloat(envPrefix+"WRITE_RATE_LIMIT", &config.WriteRateLimit),
		flagx.EnvInt(envPrefix+"WRITE_BURST", &config.WriteBurst),
	} {
		if err != nil {
			panic(err)
		}
	}
}

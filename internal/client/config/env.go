package config

import "github.com/dmitrijs2005/futureletter/internal/flagx"

const envPrefix = "FUTURELETTER_"

// parseEnv overlays FUTURELETTER_* variables. Malformed durations panic.
func parseEnv(cfg *Config) {
	flagx.LoadDotEnv()

	flagx.EnvString(envPrefix+"SERVER_ADDR", &cfg.ServerEndpointAddr)
	flagx.EnvString(envPrefix+"APP_ID", &cfg.AppID)
	flagx.EnvString(envPrefix+"AUTH_TOKEN", &cfg.InitialAuthToken)
	flagx.EnvString(envPrefix+"LOCAL_DB", &cfg.LocalDBPath)
	flagx.EnvString(envPrefix+"DATE_LAYOUT", &cfg.DateLayout)
	flagx.EnvString(envPrefix+"LOG_LEVEL", &cfg.LogLevel)

	if err := flagx.EnvDuration(envPrefix+"REQUEST_TIMEOUT", &cfg.RequestTimeout); err != nil {
		panic(err)
	}
	if err := flagx.EnvDuration(envPrefix+"ANIMATION_DELAY", &cfg.AnimationDelay); err != nil {
		panic(err)
	}
}

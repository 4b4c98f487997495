package config

import "time"

// Config holds runtime settings for the FutureLetter terminal client.
//
// An empty ServerEndpointAddr runs the client in demo mode: letters are
// validated but nothing is sent. InitialAuthToken, when set, is a custom token
// issued by a trusted backend and takes precedence over anonymous sign-in.
type Config struct {
	ServerEndpointAddr string
	AppID              string
	InitialAuthToken   string
	LocalDBPath        string
	RequestTimeout     time.Duration
	AnimationDelay     time.Duration
	DateLayout         string
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.AppID = "default-app-id"
	c.InitialAuthToken = ""
	c.LocalDBPath = "futureletter.db"
	c.RequestTimeout = 10 * time.Second
	c.AnimationDelay = 2500 * time.Millisecond
	c.DateLayout = "Mon, 02 Jan 2006 15:04"
	c.LogLevel = "warn"
}

// DemoMode reports whether the client runs without a backend.
func (c *Config) DemoMode() bool {
	return c.ServerEndpointAddr == ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), FUTURELETTER_* environment variables and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

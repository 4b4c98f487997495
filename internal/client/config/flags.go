package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/flagx"
)

// parseFlags populates Config fields from the short flags listed in the
// package documentation. os.Args is filtered first so unrelated flags do
// not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-t", "-f", "-r", "-w", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server, empty for demo mode")
	fs.StringVar(&cfg.AppID, "i", cfg.AppID, "application id")
	fs.StringVar(&cfg.InitialAuthToken, "t", cfg.InitialAuthToken, "initial custom auth token")
	fs.StringVar(&cfg.LocalDBPath, "f", cfg.LocalDBPath, "local session database path")
	requestTimeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	animationDelay := fs.Int("w", int(cfg.AnimationDelay.Milliseconds()), "submit animation delay (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.AnimationDelay = time.Duration(*animationDelay) * time.Millisecond
}

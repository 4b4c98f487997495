package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-o string   ops HTTP bind address (health and metrics)
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-k string   custom token verification secret
//	-p string   seal passphrase
//	-n string   seal salt
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-e string   Redis address for the shared change broker
//	-l float    per-user write rate, requests per second
//	-b int      per-user write burst
//	-v string   log level
//
// os.Args is filtered through flagx.FilterArgs first so that -c/-config and
// unrelated flags do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-o", "-d", "-s", "-k", "-p", "-n", "-t", "-r", "-e", "-l", "-b", "-v",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.OpsAddrHTTP, "o", config.OpsAddrHTTP, "address and port for health and metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.CustomTokenSecret, "k", config.CustomTokenSecret, "custom token secret")
	fs.StringVar(&config.SealPassphrase, "p", config.SealPassphrase, "seal passphrase")
	fs.StringVar(&config.SealSalt, "n", config.SealSalt, "seal salt")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.StringVar(&config.RedisAddr, "e", config.RedisAddr, "redis address")
	fs.Float64Var(&config.WriteRateLimit, "l", config.WriteRateLimit, "write rate limit per user (req/s)")
	fs.IntVar(&config.WriteBurst, "b", config.WriteBurst, "write burst per user")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
}

// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - the default `.env` file in the working directory is loaded once, if present;
//   - LoadEnv loads additional `.env` files explicitly;
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type and prefix.
//
// # Usage
//
//	type ClientConfig struct {
//	    Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg, config.WithPrefix("APIREQUEST_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - ErrParsingConfig  – failed to parse env vars into struct.
//   - ErrLoadingEnvFile – an explicitly requested .env file could not be read.
//   - ErrNilPointer     – nil pointer passed to Load/MustLoad.
//
// # Testing Helpers
//
// ResetCache clears the cache between tests; WithoutCache forces a single
// load to parse the environment again.
package config

// Package config loads typed configuration structs from environment
// variables, optionally seeded from .env files.
//
// Parsing is delegated to github.com/caarlos0/env/v11 and .env handling to
// github.com/joho/godotenv. Each configuration type is parsed once and cached
// for the lifetime of the process:
//
//	type Config struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"VALIDATION_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// LoadEnv applies one or more .env files explicitly; later files override
// earlier ones. In tests, Reset clears the cache and ForceReload re-parses a
// single type after the environment changed.
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile,
// ErrNilPointer and ErrConfigNotLoaded and can be checked with errors.Is.
package config

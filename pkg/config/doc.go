// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv loads one or more .env files; Load also tries the default .env
//     in the working directory once.
//   - Load parses the environment into any struct using `env` tags and caches
//     the result per type, so each type is parsed once per process.
//   - Parse fills a struct from an explicit map, which keeps tests away from
//     the process environment.
//   - ResetCache clears the cache.
//
// Settings is the configuration of the ophite command and its packages:
//
//	OPHITE_LOG_LEVEL         debug|info|warn|error (default info)
//	OPHITE_LOG_FORMAT        text|json (default text)
//	OPHITE_SEED              random seed, 0 seeds from the clock
//	OPHITE_HEX_UPPER         upper-case hex output (default true)
//	OPHITE_REGEX_CACHE_SIZE  compiled pattern cache entries (default 128)
//	OPHITE_REGEX_TIMEOUT     per-match timeout (default 1s)
//
// # Usage
//
//	s, err := config.LoadSettings()
//	if err != nil {
//	    return err
//	}
//
// # Error Handling
//
// ErrParsingConfig, ErrNilPointer, ErrLoadingEnvFile and ErrInvalidSetting
// can be compared with errors.Is; each also matches its fault kind.
package config

// Package config loads typed configuration from the environment.
//
// Each package declares its own Config struct with env/envDefault tags
// (github.com/caarlos0/env) and optional validate tags
// (github.com/go-playground/validator). Load parses the struct, validates it
// and caches the result per type, so every caller of Load for the same type
// sees the same values. A .env file in the working directory is read once,
// before the first Load; variables already present in the environment win.
//
//	var cfg jwt.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
package config

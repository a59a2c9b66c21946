// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with github.com/caarlos0/env tags. Before the
// first Load, a .env file in the working directory is loaded with
// github.com/joho/godotenv if present; variables already set in the process
// environment win over the file.
//
//	type HTTPConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	    Hops int    `env:"TRUST_PROXY_HOPS,required"`
//	}
//
//	var cfg HTTPConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Use MustLoad in main when the process cannot start without the values, and
// LoadFrom in tests to parse from an explicit map instead of the environment.
package config

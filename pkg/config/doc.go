// Package config loads environment-based configuration into typed structs.
//
// Struct fields are described with caarlos0/env tags. A .env file in the
// working directory (or the files passed with WithEnvFiles) is loaded once
// with godotenv before parsing; missing files are not an error and variables
// already present in the environment always win.
//
//	type Config struct {
//	    Addr string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    TTL  time.Duration `env:"FORM_IDLE_TTL" envDefault:"30m"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
package config

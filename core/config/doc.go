// Package config loads environment variables into typed structs using
// caarlos0/env tags. Each struct type is parsed once and cached.
//
//	type Config struct {
//		Addr    string `env:"SERVER_ADDR" envDefault:":5173"`
//		Secrets string `env:"COOKIE_SECRETS,required"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// A .env file, when present, is read once on first use; variables already set
// in the process environment win.
package config

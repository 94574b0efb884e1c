// Package config loads wallgrab's configuration.
//
// Values are layered, highest priority first:
//
//   - command line flags
//   - environment variables prefixed with WALLGRAB_ (a .env file is loaded first)
//   - a YAML file (--config, ./.wallgrab.yaml, ~/.config/wallgrab/config.yaml, ~/.wallgrab.yaml)
//   - DefaultConfig
//
// With no file and no environment the defaults reproduce the stock behaviour:
// scrape https://wallpaperswide.com into ./downloads with a two second pause
// between listing pages and no HTTP timeout.
package config

// Package config loads and validates the reference API configuration.
//
// Configuration is a TOML file with four tables: general, server, store and
// log. Every key is optional; missing keys keep the value from DefaultConfig,
// and an empty path means defaults only. Unknown keys are rejected.
//
//	[server]
//	listen_addr = "127.0.0.1:9090"
//
//	[store]
//	seed = false
//
// ValidateConfig collects every invalid field into ValidationErrors, with
// field paths named after their TOML keys (e.g. "server.listen_addr").
package config

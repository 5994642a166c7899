// Package config handles configuration management for readerlist.
// Settings are layered from embedded defaults, an optional TOML file and
// READERLIST_* environment variables.
package config

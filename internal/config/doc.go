// Package config loads, normalizes, and validates the tool's configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads the TOML file from ~/.config/doublons/config.toml, a
// doublons.toml in the working directory, or an explicit --config path. The
// Config type centralizes every knob the CLI needs: backup/export/log
// directories, input decoding, logging, and report toggles.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical encodings, and clear validation errors.
package config

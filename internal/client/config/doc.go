// Package config loads runtime configuration for the kouden CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Example file:
//
//	server_endpoint_addr: 127.0.0.1:50051
//	realtime_url: ws://127.0.0.1:8080
//	online_check_interval: 3s
//	reconnect_backoff_max: 1m
package config
